package main

import (
	"log"

	"ayurbackend/config"
	"ayurbackend/routes"
	"ayurbackend/services"
	"ayurbackend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}

	services.InitNotifyDeps(config.DB, hub, push)

	recipeDB := services.NewRecipeDBService()
	charts := services.NewDietChartService(recipeDB)

	r := routes.SetupRouter(hub, push, charts, recipeDB)
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
