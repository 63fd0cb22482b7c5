// File: internal/worker/worker_test.go
package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 20; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 20, count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestFakePool(t *testing.T) {
	p := &FakePool{}
	ran := false
	p.Submit(func() { ran = true })
	require.True(t, ran)
	require.Equal(t, 1, p.Submitted)
}
