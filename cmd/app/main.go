package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/workerrepo"
	"fulfillment/internal/jobs"
	"fulfillment/internal/seeding"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.SeedDemoData {
		seeder := seeding.NewSeeder(
			app.CreateCreateWorkerCommandHandler(),
			app.CreateCreateOrderCommandHandler(),
			app.CreateUpdateOrderCommandHandler(),
			app.CreateUpsertInventoryItemCommandHandler(),
			app.CreateGetAllWorkersQueryHandler(),
			logger,
		)
		if err := seeder.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockItemsQueryHandler(),
		configs.LowStockThreshold,
		configs.LowStockSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		APIKey:            goDotEnvVariable("API_KEY"),
		LowStockThreshold: goDotEnvIntVariable("LOW_STOCK_THRESHOLD", 5),
		LowStockSchedule:  goDotEnvVariableOrDefault("LOW_STOCK_SCHEDULE", "*/5 * * * *"),
		SeedDemoData:      goDotEnvBoolVariable("SEED_DEMO_DATA"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableOrDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %s", key, raw)
	}
	return value
}

func goDotEnvBoolVariable(key string) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %s", key, raw)
	}
	return value
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&workerrepo.WorkerDTO{},
		&orderrepo.OrderDTO{},
		&inventoryrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateCreateWorkerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCreateInventoryItemCommandHandler(),
		app.CreateUpdateInventoryItemCommandHandler(),
		app.CreateGetAllWorkersQueryHandler(),
		app.CreateGetWorkerQueryHandler(),
		app.CreateGetWorkerPerformanceQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetAllInventoryQueryHandler(),
		app.CreateGetLowStockItemsQueryHandler(),
		app.CreateGetKpisQueryHandler(),
		configs.LowStockThreshold,
	)

	e := echo.New()
	e.Use(httpadapter.APIKeyAuth(configs.APIKey))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
