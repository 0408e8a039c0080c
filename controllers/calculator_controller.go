package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/VibhourSharma/prescript-ease/health"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// GET /api/calculators
func ListCalculators(c *gin.Context) {
	c.JSON(http.StatusOK, health.Calculators())
}

// POST /api/calculators/:id dispatches through the registry
func ComputeCalculator(c *gin.Context) {
	calc, ok := health.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown calculator"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := calc.Compute(body, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/bmi
func CalculateBMI(c *gin.Context) {
	var in health.BMIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateBMI(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/body-fat
func CalculateBodyFat(c *gin.Context) {
	var in health.BodyFatInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateBodyFat(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/calories
func CalculateCalories(c *gin.Context) {
	var in health.CalorieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateCalories(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/ideal-weight
func CalculateIdealWeight(c *gin.Context) {
	var in health.IdealWeightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateIdealWeight(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/heart-rate
func CalculateHeartRateZones(c *gin.Context) {
	var in health.HeartRateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateHeartRateZones(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/bac
func CalculateBAC(c *gin.Context) {
	var in health.BACInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateBAC(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/protein
func CalculateProtein(c *gin.Context) {
	var in health.ProteinInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	result, err := health.CalculateProtein(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/age  { "birth_date": "1990-03-15" }
func CalculateAge(c *gin.Context) {
	var req struct {
		BirthDate string `json:"birth_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	birth, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}
	result, err := health.CalculateAge(health.AgeInput{BirthDate: birth}, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/calculators/due-date  { "last_menstrual_period": "2024-01-01" }
func CalculateDueDate(c *gin.Context) {
	var req struct {
		LastMenstrualPeriod string `json:"last_menstrual_period" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	lmp, err := time.Parse(dateLayout, req.LastMenstrualPeriod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "last_menstrual_period must be YYYY-MM-DD"})
		return
	}
	result, err := health.CalculateDueDate(health.DueDateInput{LastMenstrualPeriod: lmp}, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
