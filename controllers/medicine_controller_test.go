package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VibhourSharma/prescript-ease/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func medicineRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := services.NewMedicineService(services.NewOpenFDAService(zap.NewNop()), nil, zap.NewNop())
	r.GET("/api/medicines/search", NewMedicineController(svc).Search)
	return r
}

func TestMedicineSearchRequiresQuery(t *testing.T) {
	r := medicineRouter()

	for _, target := range []string{"/api/medicines/search", "/api/medicines/search?q=%20%20"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestMedicineSearchReturnsLabelInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{
				"openfda": map[string]interface{}{"brand_name": []string{"Advil"}},
			}},
		})
	}))
	defer server.Close()
	t.Setenv("OPENFDA_BASE_URL", server.URL)

	r := medicineRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/medicines/search?q=ibuprofen", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var info struct {
		BrandName string `json:"brand_name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Advil", info.BrandName)
}

func TestMedicineSearchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"NOT_FOUND"}}`, http.StatusNotFound)
	}))
	defer server.Close()
	t.Setenv("OPENFDA_BASE_URL", server.URL)

	r := medicineRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/medicines/search?q=nonexistium", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
