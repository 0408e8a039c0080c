package main

import (
	"os"

	"github.com/VibhourSharma/prescript-ease/config"
	"github.com/VibhourSharma/prescript-ease/controllers"
	"github.com/VibhourSharma/prescript-ease/routes"
	"github.com/VibhourSharma/prescript-ease/services"
	"github.com/VibhourSharma/prescript-ease/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	cache := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_ADDR", "localhost:6379"),
	})

	vision := services.NewVisionService(config.Logger)
	fda := services.NewOpenFDAService(config.Logger)

	prescriptionSvc := services.NewPrescriptionService(vision, services.S3ImageStore{}, config.DB, config.Logger)
	medicineSvc := services.NewMedicineService(fda, cache, config.Logger)

	r := routes.SetupRouter(
		config.Logger,
		controllers.NewPrescriptionController(prescriptionSvc),
		controllers.NewMedicineController(medicineSvc),
	)

	r.Run(":" + getenv("PORT", "8080"))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
