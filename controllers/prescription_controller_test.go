package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/VibhourSharma/prescript-ease/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// Upload validation runs before any outbound call, so a controller with no
// service behind it is enough to cover the rejection paths.
func prescriptionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewPrescriptionController(nil)
	r.POST("/api/prescriptions", ctrl.Analyze)
	return r
}

func TestAnalyzeRequiresFile(t *testing.T) {
	r := prescriptionRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "prescription image is required")
}

func TestAnalyzeRejectsNonImageUpload(t *testing.T) {
	r := prescriptionRouter()
	body, contentType := multipartUpload(t, "file", "scan.pdf", "application/pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeVisionFailureIsBadGateway(t *testing.T) {
	visionDown := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer visionDown.Close()
	t.Setenv("VISION_API_URL", visionDown.URL)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := services.NewPrescriptionService(services.NewVisionService(zap.NewNop()), nil, nil, zap.NewNop())
	r.POST("/api/prescriptions", NewPrescriptionController(svc).Analyze)

	body, contentType := multipartUpload(t, "file", "scan.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAnalyzeStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway,
		analyzeStatus(fmt.Errorf("%w: vision API error 500", services.ErrVisionAnalysis)))
	assert.Equal(t, http.StatusInternalServerError,
		analyzeStatus(errors.New("failed to store analysis: connection refused")))
}

func TestAnalyzeRejectsWrongFieldName(t *testing.T) {
	r := prescriptionRouter()
	body, contentType := multipartUpload(t, "image", "scan.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
