// File: internal/service/rating.go
package service

import (
	"math"

	"iapedia/internal/model"
)

// AverageRating 計算評論的平均評分（四捨五入至小數一位）與評論數
// 無評論時平均為 0
func AverageRating(reviews []model.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}
