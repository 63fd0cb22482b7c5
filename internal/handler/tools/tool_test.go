// File: internal/handler/tools/tool_test.go
package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"iapedia/internal/database"
	"iapedia/internal/middleware"
	"iapedia/internal/model"
	"iapedia/internal/service"
	"iapedia/internal/store"
	"iapedia/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	createTool = store.CreateTool
	getToolByID = store.GetToolByID
	listTools = store.ListTools
	updateTool = store.UpdateTool
	deleteTool = store.DeleteTool
	incrementViews = store.IncrementViews
	replaceToolLabels = store.ReplaceToolLabels
	searchTools = store.SearchTools
	listToolLabels = store.ListToolLabels
	listReviewsByToolID = store.ListReviewsByToolIDs
	addFavorite = store.AddFavorite
	removeFavorite = store.RemoveFavorite
}

func stubEnrichment(labels map[int][]model.Label, reviews map[int][]model.Review) {
	listToolLabels = func(context.Context, database.DB, []int) (map[int][]model.Label, error) {
		return labels, nil
	}
	listReviewsByToolID = func(context.Context, database.DB, []int) (map[int][]model.Review, error) {
		return reviews, nil
	}
}

func newGetCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newIDCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/tools/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/tools/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestListToolsHandler(t *testing.T) {
	e := echo.New()

	t.Run("enriches labels and ratings", func(t *testing.T) {
		t.Cleanup(restore)
		listTools = func(context.Context, database.DB) ([]model.Tool, error) {
			return []model.Tool{{ID: 1, Name: "Foo"}}, nil
		}
		stubEnrichment(
			map[int][]model.Label{1: {{ID: 2, Slug: "free"}}},
			map[int][]model.Review{1: {{Rating: 5}, {Rating: 5}, {Rating: 4}}},
		)
		ctx, rec := newGetCtx(e, "/tools")
		require.NoError(t, ListToolsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"average_rating":4.7`)
		require.Contains(t, rec.Body.String(), `"review_count":3`)
		require.Contains(t, rec.Body.String(), `"slug":"free"`)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		listTools = func(context.Context, database.DB) ([]model.Tool, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newGetCtx(e, "/tools")
		require.NoError(t, ListToolsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetToolHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodGet, "abc", "")
		require.NoError(t, GetToolHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getToolByID = func(context.Context, database.DB, int) (*model.Tool, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "99", "")
		require.NoError(t, GetToolHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getToolByID = func(_ context.Context, _ database.DB, id int) (*model.Tool, error) {
			require.Equal(t, 5, id)
			return &model.Tool{ID: 5, Name: "Foo"}, nil
		}
		stubEnrichment(map[int][]model.Label{}, map[int][]model.Review{})
		ctx, rec := newIDCtx(e, http.MethodGet, "5", "")
		require.NoError(t, GetToolHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"name":"Foo"`)
		require.Contains(t, rec.Body.String(), `"average_rating":0`)
	})
}

func TestParseLabelIDs(t *testing.T) {
	require.Nil(t, parseLabelIDs(""))
	require.Equal(t, []int{1, 3}, parseLabelIDs("1,3"))
	require.Equal(t, []int{2}, parseLabelIDs("x, 2, y"))
}

func TestSearchToolsHandler(t *testing.T) {
	e := echo.New()

	t.Run("passes normalized options and returns pagination", func(t *testing.T) {
		t.Cleanup(restore)
		searchTools = func(_ context.Context, _ database.DB, opts store.SearchOptions) ([]model.Tool, int, error) {
			require.Equal(t, "foo", opts.Term)
			require.Equal(t, []int{1, 3}, opts.LabelIDs)
			require.Equal(t, "views", opts.SortBy)
			require.Equal(t, 2, opts.Page)
			require.Equal(t, 10, opts.Limit)
			return []model.Tool{{ID: 1}}, 57, nil
		}
		stubEnrichment(map[int][]model.Label{}, map[int][]model.Review{})
		ctx, rec := newGetCtx(e, "/tools/search/query?q=foo&labels=1,3&sortBy=views&page=2")
		require.NoError(t, SearchToolsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":57`)
		require.Contains(t, rec.Body.String(), `"pages":6`)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		searchTools = func(context.Context, database.DB, store.SearchOptions) ([]model.Tool, int, error) {
			return nil, 0, errors.New("db down")
		}
		ctx, rec := newGetCtx(e, "/tools/search/query")
		require.NoError(t, SearchToolsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRecordViewHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodPost, "abc", "")
		require.NoError(t, RecordViewHandler(nil, &worker.FakePool{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("accepted and incremented via pool", func(t *testing.T) {
		t.Cleanup(restore)
		incremented := 0
		incrementViews = func(_ context.Context, _ database.DB, id int) error {
			incremented = id
			return nil
		}
		pool := &worker.FakePool{}
		ctx, rec := newIDCtx(e, http.MethodPost, "5", "")
		require.NoError(t, RecordViewHandler(nil, pool)(ctx))
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.Equal(t, 1, pool.Submitted)
		require.Equal(t, 5, incremented)
	})
}

func TestCreateToolHandler(t *testing.T) {
	e := echo.New()

	t.Run("unknown category", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createTool = func(context.Context, database.DB, *model.Tool) (*model.Tool, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodPost, "", `{"name":"Foo","url":"https://f.co","category_id":9,"plan_type":"FREE"}`)
		require.NoError(t, CreateToolHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "category not found")
	})

	t.Run("success with labels", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createTool = func(_ context.Context, _ database.DB, tool *model.Tool) (*model.Tool, error) {
			tool.ID = 11
			return tool, nil
		}
		var gotLabels []int
		replaceToolLabels = func(_ context.Context, _ database.DB, toolID int, labelIDs []int) error {
			require.Equal(t, 11, toolID)
			gotLabels = labelIDs
			return nil
		}
		stubEnrichment(map[int][]model.Label{}, map[int][]model.Review{})
		ctx, rec := newIDCtx(e, http.MethodPost, "", `{"name":"Foo","url":"https://f.co","category_id":2,"plan_type":"FREE","label_ids":[1,3]}`)
		require.NoError(t, CreateToolHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, []int{1, 3}, gotLabels)
	})
}

func TestUpdateToolHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateTool = func(context.Context, database.DB, *model.Tool) error { return store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodPut, "99", `{"name":"Foo","url":"https://f.co","category_id":2,"plan_type":"FREE"}`)
		require.NoError(t, UpdateToolHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("replaces label set", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateTool = func(_ context.Context, _ database.DB, tool *model.Tool) error {
			require.Equal(t, 5, tool.ID)
			return nil
		}
		var gotLabels []int
		replaceToolLabels = func(_ context.Context, _ database.DB, toolID int, labelIDs []int) error {
			require.Equal(t, 5, toolID)
			gotLabels = labelIDs
			return nil
		}
		getToolByID = func(context.Context, database.DB, int) (*model.Tool, error) {
			return &model.Tool{ID: 5, Name: "Foo"}, nil
		}
		stubEnrichment(map[int][]model.Label{}, map[int][]model.Review{})
		ctx, rec := newIDCtx(e, http.MethodPut, "5", `{"name":"Foo","url":"https://f.co","category_id":2,"plan_type":"FREE","label_ids":[4]}`)
		require.NoError(t, UpdateToolHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []int{4}, gotLabels)
	})
}

func TestDeleteToolHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTool = func(context.Context, database.DB, int) error { return store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodDelete, "99", "")
		require.NoError(t, DeleteToolHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTool = func(_ context.Context, _ database.DB, id int) error {
			require.Equal(t, 5, id)
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "5", "")
		require.NoError(t, DeleteToolHandler(nil)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func withClaims(c echo.Context, userID int) echo.Context {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: userID})
	return c
}

func TestAddFavoriteHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodPost, "5", "")
		require.NoError(t, AddFavoriteHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Cleanup(restore)
		addFavorite = func(context.Context, database.DB, int, int) error { return store.ErrDuplicate }
		ctx, rec := newIDCtx(e, http.MethodPost, "5", "")
		require.NoError(t, AddFavoriteHandler(nil)(withClaims(ctx, 7)))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "already favorited")
	})

	t.Run("unknown tool", func(t *testing.T) {
		t.Cleanup(restore)
		addFavorite = func(context.Context, database.DB, int, int) error { return store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodPost, "99", "")
		require.NoError(t, AddFavoriteHandler(nil)(withClaims(ctx, 7)))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success uses token identity", func(t *testing.T) {
		t.Cleanup(restore)
		addFavorite = func(_ context.Context, _ database.DB, userID, toolID int) error {
			require.Equal(t, 7, userID)
			require.Equal(t, 5, toolID)
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodPost, "5", "")
		require.NoError(t, AddFavoriteHandler(nil)(withClaims(ctx, 7)))
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestRemoveFavoriteHandler(t *testing.T) {
	e := echo.New()

	t.Run("not favorited", func(t *testing.T) {
		t.Cleanup(restore)
		removeFavorite = func(context.Context, database.DB, int, int) error { return store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodDelete, "5", "")
		require.NoError(t, RemoveFavoriteHandler(nil)(withClaims(ctx, 7)))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		removeFavorite = func(_ context.Context, _ database.DB, userID, toolID int) error {
			require.Equal(t, 7, userID)
			require.Equal(t, 5, toolID)
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "5", "")
		require.NoError(t, RemoveFavoriteHandler(nil)(withClaims(ctx, 7)))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
