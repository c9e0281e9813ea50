package main

import (
	"log"

	"thehook-backend/internal/config"
	"thehook-backend/internal/handlers"
	"thehook-backend/internal/router"
	"thehook-backend/internal/store"
)

func main() {
	config.Load()

	client, err := store.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if err := store.EnsureIndexes(db); err != nil {
		log.Printf("index warning: %v", err)
	}

	var policy handlers.OrderPolicy
	if config.AppEnv.StrictOrderRules {
		policy = handlers.OrderPolicy{RequireItems: true, RequirePositiveQuantity: true}
	}

	r := router.New(store.NewMongo(db), policy, config.AppEnv.FrontendURL)
	r.Run(":" + config.AppEnv.Port)
}
