package main

import (
	"context"
	"log"
	"os"

	"campuseats_back_end/internal/cart"
	"campuseats_back_end/internal/checkout"
	"campuseats_back_end/internal/config"
	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/handlers/user"
	"campuseats_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	database.InitPreparedStatements()
	warmupRedisCache()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_URL")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// The cart store is built once and handed to the handlers that need it;
	// nothing else can touch the underlying sequence.
	carts := user.NewCartHandler(cart.NewStore(database.Redis))
	checkouts := user.NewCheckoutHandler(carts.Store, checkout.NewDraftSlot(database.Redis))

	routes.RegisterRoutes(r, carts, checkouts)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 CampusEats server listening on port", port)
	r.Run(":" + port)
}

// warmupRedisCache pings Redis so the first request does not pay the
// connection cost.
func warmupRedisCache() {
	if err := database.Redis.Ping(context.Background()).Err(); err == nil {
		log.Println("✅ Redis cache warmed up")
	}
}
