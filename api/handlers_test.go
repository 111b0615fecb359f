package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-term-search/config"
	"github.com/gcbaptista/go-term-search/internal/engine"
	"github.com/gcbaptista/go-term-search/model"
	"github.com/gcbaptista/go-term-search/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, engine.NewEngine())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createPeopleDataset(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/datasets", config.DatasetSettings{
		Name:             "people",
		SearchableFields: []string{"firstName", "lastName"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestHealthCheckHandler(t *testing.T) {
	router := setupTestRouter()
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateDatasetHandler(t *testing.T) {
	router := setupTestRouter()

	t.Run("valid dataset creation", func(t *testing.T) {
		createPeopleDataset(t, router)
	})

	t.Run("duplicate dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets", config.DatasetSettings{
			Name:             "people",
			SearchableFields: []string{"firstName"},
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets", config.DatasetSettings{
			SearchableFields: []string{"firstName"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/datasets", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDatasetHandlers(t *testing.T) {
	router := setupTestRouter()
	createPeopleDataset(t, router)

	t.Run("list datasets", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/datasets", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Datasets []config.DatasetSettings `json:"datasets"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Datasets, 1)
		assert.Equal(t, "people", resp.Datasets[0].Name)
	})

	t.Run("get dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/datasets/people", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get missing dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/datasets/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/datasets/people", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/datasets/people", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAddDocumentsHandler(t *testing.T) {
	router := setupTestRouter()
	createPeopleDataset(t, router)

	t.Run("add documents", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/people/documents", []model.Document{
			{"documentID": "p1", "firstName": "John", "lastName": "Richards"},
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("empty document list", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/people/documents", []model.Document{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/nope/documents", []model.Document{
			{"firstName": "John"},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearchHandler(t *testing.T) {
	router := setupTestRouter()
	createPeopleDataset(t, router)

	w := doJSON(t, router, http.MethodPost, "/datasets/people/documents", []model.Document{
		{"documentID": "p1", "firstName": "John", "lastName": "Richards"},
		{"documentID": "p2", "firstName": "Joe", "lastName": "Johnson"},
		{"documentID": "p3", "firstName": "Mary", "lastName": "Quill"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("ranked search", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/people/search", SearchRequest{Query: "John"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result.Hits, 2)
		assert.Equal(t, 2, result.Total)
		assert.NotEmpty(t, result.QueryId)

		first := result.Hits[0].Document
		id, ok := first.GetDocumentID()
		require.True(t, ok)
		assert.Equal(t, "p1", id, "exact match should rank first")
		assert.Greater(t, result.Hits[0].Score, result.Hits[1].Score)
	})

	t.Run("limit override", func(t *testing.T) {
		limit := 1
		w := doJSON(t, router, http.MethodPost, "/datasets/people/search", SearchRequest{Query: "John", Limit: &limit})
		require.Equal(t, http.StatusOK, w.Code)

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Len(t, result.Hits, 1)
	})

	t.Run("missing dataset", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/nope/search", SearchRequest{Query: "John"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no matches", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/datasets/people/search", SearchRequest{Query: "zzz"})
		require.Equal(t, http.StatusOK, w.Code)

		var result services.SearchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Empty(t, result.Hits)
	})
}
