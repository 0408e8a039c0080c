package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/VibhourSharma/prescript-ease/services"
	"github.com/VibhourSharma/prescript-ease/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PrescriptionController struct {
	svc *services.PrescriptionService
}

func NewPrescriptionController(svc *services.PrescriptionService) *PrescriptionController {
	return &PrescriptionController{svc: svc}
}

// POST /api/prescriptions (multipart "file")
func (ctrl *PrescriptionController) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prescription image is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := utils.ValidateUpload(contentType, fileHeader.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	record, data, err := ctrl.svc.Analyze(image, contentType)
	if err != nil {
		c.JSON(analyzeStatus(err), gin.H{"error": "failed to analyze prescription", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         record.ID,
		"image_url":  record.ImageURL,
		"created_at": record.CreatedAt,
		"data":       data,
	})
}

// analyzeStatus maps upstream vision failures to 502; everything else that
// goes wrong in the analyze flow (serialization, DB insert) is local, so 500.
func analyzeStatus(err error) int {
	if errors.Is(err, services.ErrVisionAnalysis) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// GET /api/prescriptions/:id
func (ctrl *PrescriptionController) Get(c *gin.Context) {
	record, data, err := ctrl.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         record.ID,
		"image_url":  record.ImageURL,
		"created_at": record.CreatedAt,
		"data":       data,
	})
}

// GET /api/prescriptions/:id/report serves the plain-text download
func (ctrl *PrescriptionController) Report(c *gin.Context) {
	report, err := ctrl.svc.Report(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="prescription_results.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// DELETE /api/prescriptions/:id is the explicit clear/reset
func (ctrl *PrescriptionController) Delete(c *gin.Context) {
	if err := ctrl.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "prescription cleared"})
}
