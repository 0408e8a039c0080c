package routes

import (
	"github.com/VibhourSharma/prescript-ease/controllers"
	"github.com/VibhourSharma/prescript-ease/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(
	logger *zap.Logger,
	prescriptions *controllers.PrescriptionController,
	medicines *controllers.MedicineController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(cors.Default()) // SPA frontend runs on another origin

	api := r.Group("/api")

	// Stateless calculators
	calc := api.Group("/calculators")
	{
		calc.GET("", controllers.ListCalculators)
		calc.POST("/bmi", controllers.CalculateBMI)
		calc.POST("/body-fat", controllers.CalculateBodyFat)
		calc.POST("/calories", controllers.CalculateCalories)
		calc.POST("/ideal-weight", controllers.CalculateIdealWeight)
		calc.POST("/heart-rate", controllers.CalculateHeartRateZones)
		calc.POST("/bac", controllers.CalculateBAC)
		calc.POST("/protein", controllers.CalculateProtein)
		calc.POST("/age", controllers.CalculateAge)
		calc.POST("/due-date", controllers.CalculateDueDate)
		calc.POST("/:id", controllers.ComputeCalculator)
	}

	// Prescription analysis flow
	rx := api.Group("/prescriptions")
	{
		rx.POST("", prescriptions.Analyze)
		rx.GET("/:id", prescriptions.Get)
		rx.GET("/:id/report", prescriptions.Report)
		rx.DELETE("/:id", prescriptions.Delete)
	}

	// Medicine information lookup
	api.GET("/medicines/search", medicines.Search)

	return r
}
