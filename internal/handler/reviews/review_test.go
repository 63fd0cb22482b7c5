// File: internal/handler/reviews/review_test.go
package reviews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"iapedia/internal/database"
	"iapedia/internal/middleware"
	"iapedia/internal/model"
	"iapedia/internal/service"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	createReview = store.CreateReview
	getReviewByID = store.GetReviewByID
	updateReview = store.UpdateReview
	deleteReview = store.DeleteReview
	listReviewsByTool = store.ListReviewsByTool
}

func newCtx(e *echo.Echo, method, id, body string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/reviews/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/reviews/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	if userID != 0 {
		c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: userID})
	}
	return c, rec
}

func TestCreateReviewHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "", `{"tool_id":1,"rating":5}`, 0)
		require.NoError(t, CreateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("identity comes from token, not body", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createReview = func(_ context.Context, _ database.DB, r *model.Review) (*model.Review, error) {
			require.Equal(t, 7, r.UserID)
			r.ID = 3
			return r, nil
		}
		ctx, rec := newCtx(e, http.MethodPost, "", `{"tool_id":1,"rating":5,"content":"nice","user_id":999}`, 7)
		require.NoError(t, CreateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"user_id":7`)
	})

	t.Run("duplicate review", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createReview = func(context.Context, database.DB, *model.Review) (*model.Review, error) {
			return nil, store.ErrDuplicate
		}
		ctx, rec := newCtx(e, http.MethodPost, "", `{"tool_id":1,"rating":5}`, 7)
		require.NoError(t, CreateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "already reviewed")
	})

	t.Run("unknown tool", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createReview = func(context.Context, database.DB, *model.Review) (*model.Review, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodPost, "", `{"tool_id":99,"rating":5}`, 7)
		require.NoError(t, CreateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateReviewHandler(t *testing.T) {
	e := echo.New()

	t.Run("not the author", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getReviewByID = func(context.Context, database.DB, int) (*model.Review, error) {
			return &model.Review{ID: 3, UserID: 8}, nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "3", `{"rating":4}`, 7)
		require.NoError(t, UpdateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "not the review author")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getReviewByID = func(context.Context, database.DB, int) (*model.Review, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodPut, "99", `{"rating":4}`, 7)
		require.NoError(t, UpdateReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getReviewByID = func(context.Context, database.DB, int) (*model.Review, error) {
			return &model.Review{ID: 3, UserID: 7, Rating: 5}, nil
		}
		updated := false
		updateReview = func(_ context.Context, _ database.DB, id, rating int, content string) error {
			updated = true
			require.Equal(t, 3, id)
			require.Equal(t, 4, rating)
			require.Equal(t, "ok", content)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "3", `{"rating":4,"content":"ok"}`, 7)
		require.NoError(t, UpdateReviewHandler(nil)(ctx))
		require.True(t, updated)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"rating":4`)
	})
}

func TestDeleteReviewHandler(t *testing.T) {
	e := echo.New()

	t.Run("not the author", func(t *testing.T) {
		t.Cleanup(restore)
		getReviewByID = func(context.Context, database.DB, int) (*model.Review, error) {
			return &model.Review{ID: 3, UserID: 8}, nil
		}
		deleted := false
		deleteReview = func(context.Context, database.DB, int) error { deleted = true; return nil }
		ctx, rec := newCtx(e, http.MethodDelete, "3", "", 7)
		require.NoError(t, DeleteReviewHandler(nil)(ctx))
		require.False(t, deleted)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getReviewByID = func(context.Context, database.DB, int) (*model.Review, error) {
			return &model.Review{ID: 3, UserID: 7}, nil
		}
		deleteReview = func(_ context.Context, _ database.DB, id int) error {
			require.Equal(t, 3, id)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodDelete, "3", "", 7)
		require.NoError(t, DeleteReviewHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListToolReviewsHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "abc", "", 0)
		require.NoError(t, ListToolReviewsHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("includes author info", func(t *testing.T) {
		t.Cleanup(restore)
		listReviewsByTool = func(_ context.Context, _ database.DB, toolID int) ([]model.ReviewWithAuthor, error) {
			require.Equal(t, 5, toolID)
			return []model.ReviewWithAuthor{{
				Review:   model.Review{ID: 1, UserID: 7, ToolID: 5, Rating: 5},
				UserName: "Alice",
			}}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "5", "", 0)
		require.NoError(t, ListToolReviewsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"user_name":"Alice"`)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Cleanup(restore)
		listReviewsByTool = func(context.Context, database.DB, int) ([]model.ReviewWithAuthor, error) {
			return nil, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "5", "", 0)
		require.NoError(t, ListToolReviewsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}
