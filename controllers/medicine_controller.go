package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/VibhourSharma/prescript-ease/services"

	"github.com/gin-gonic/gin"
)

type MedicineController struct {
	svc *services.MedicineService
}

func NewMedicineController(svc *services.MedicineService) *MedicineController {
	return &MedicineController{svc: svc}
}

// GET /api/medicines/search?q=paracetamol
func (ctrl *MedicineController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter a medicine name"})
		return
	}

	info, err := ctrl.svc.Lookup(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medicine not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "medicine lookup failed"})
		return
	}
	c.JSON(http.StatusOK, info)
}
