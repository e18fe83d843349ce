package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inventory-api/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := catalog.NewHandler(catalog.NewService(seed()))
	r.GET("/inventory", handler.List)
	r.GET("/inventory/:itemId", handler.Get)
	return r
}

func TestCatalogHandler_List(t *testing.T) {
	r := setupCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data catalog.ItemListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 3)
	assert.Equal(t, "0.99", body.Data.Items[0].Price)
}

func TestCatalogHandler_ListWithQuery(t *testing.T) {
	r := setupCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/inventory?q=Bre", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data catalog.ItemListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Bread", body.Data.Items[0].Name)
}

func TestCatalogHandler_Get(t *testing.T) {
	r := setupCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/inventory/milk", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/inventory/unknown", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
