package config

import (
	"os"
	"strconv"
	"time"

	migration "github.com/ViniciusVRodrigues/despensa-backend/cmd/database/migrate"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/handlers"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/routes"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/middleware"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/utils/storage"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/dashboard"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/pantry"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/shoppinglist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	thresholds := loadThresholds()

	// Repository
	var (
		productRepository      product.ProductRepository
		pantryRepository       pantry.PantryRepository
		shoppingListRepository shoppinglist.ShoppingListRepository
	)

	if utils.GetConfig("STORAGE_BACKEND") == "local" {
		path := utils.GetConfig("LOCAL_STORE_PATH")
		if path == "" {
			path = "despensa.db"
		}
		store, err := storage.NewLocalStore(path)
		if err != nil {
			return nil, err
		}
		if err := storage.Seed(store); err != nil {
			return nil, err
		}
		productRepository = product.NewLocalProductRepository(store)
		pantryRepository = pantry.NewLocalPantryRepository(store)
		shoppingListRepository = shoppinglist.NewLocalShoppingListRepository(store)
	} else {
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, err
		}
		productRepository = product.NewProductRepository(db)
		pantryRepository = pantry.NewPantryRepository(db)
		shoppingListRepository = shoppinglist.NewShoppingListRepository(db)
	}

	// Service
	productService := product.NewProductService(productRepository)
	pantryService := pantry.NewPantryService(pantryRepository, productRepository, thresholds)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, productRepository)
	dashboardService := dashboard.NewDashboardService(pantryRepository, shoppingListRepository, thresholds)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ProductHandler:      productHandler,
		PantryHandler:       pantryHandler,
		ShoppingListHandler: shoppingListHandler,
		DashboardHandler:    dashboardHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func loadThresholds() pantry.Thresholds {
	thresholds := pantry.DefaultThresholds()
	if v, err := strconv.Atoi(utils.GetConfig("PANTRY_EXPIRING_SOON_DAYS")); err == nil && v > 0 {
		thresholds.ExpiringSoonDays = v
	}
	if v, err := strconv.ParseFloat(utils.GetConfig("PANTRY_LOW_STOCK_THRESHOLD"), 64); err == nil && v > 0 {
		thresholds.LowStock = v
	}
	if v, err := strconv.ParseFloat(utils.GetConfig("PANTRY_RUNNING_LOW_THRESHOLD"), 64); err == nil && v > 0 {
		thresholds.RunningLow = v
	}
	return thresholds
}
