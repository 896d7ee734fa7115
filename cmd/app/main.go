package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"commerce/cmd"
	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres/clientrepo"
	"commerce/internal/adapters/out/postgres/deliveryrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/paymentrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/adapters/out/postgres/supplierrepo"
	"commerce/internal/adapters/out/postgres/transporterrepo"
	"commerce/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.DelayJobSchedule != "" {
		jobManager := jobs.NewJobManager(
			app.CreateFlagDelayedDeliveriesCommandHandler(),
			configs.DelayJobSchedule,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		DelayJobSchedule: goDotEnvVariable("DELAY_JOB_SCHEDULE"),
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&clientrepo.ClientDTO{},
		&supplierrepo.SupplierDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&transporterrepo.TransporterDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateClientCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateAddStockCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreateTransporterCommandHandler(),
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateAssignTransporterCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateUpdatePaymentStatusCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateGetClientOrdersQueryHandler(),
		app.CreateSearchProductsQueryHandler(),
		app.CreateGetDeliveriesByStatusQueryHandler(),
		app.CreateGetUpcomingDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
