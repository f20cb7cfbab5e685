package main

import (
	"log"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/routes"
	"github.com/suportelm/nutri-ai-vision-scan-17/utils"
)

func main() {
	config.Load()
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()
	if err := r.Run(":" + config.App.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
