package main

import (
	"fmt"
	"log"
	"os"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/migration"
	"inventory-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	database.SeedWarehouses(db)
	database.SeedAdminUser(db)
	if _, err := os.Stat(config.CatalogPath); err == nil {
		inserted, err := database.SeedSkusFromCSV(db, config.CatalogPath)
		if err != nil {
			log.Println("Catalog seed failed:", err)
		} else if inserted > 0 {
			log.Printf("Seeded %d SKUs from %s", inserted, config.CatalogPath)
		}
	}

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupLogRoutes(app, db)
	routes.SetupShipmentRoutes(app, db)
	routes.SetupMessageRoutes(app, db)
	routes.SetupSkuRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
