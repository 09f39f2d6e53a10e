package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/riderrepo"
	"marketplace/internal/adapters/out/postgres/taskrepo"
	"marketplace/internal/generated/servers"
	"marketplace/internal/jobs"
	"marketplace/internal/notifier"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateSchema(db)

	logger := slog.Default()
	changeNotifier := notifier.New(debounceWindow(configs), logger)
	defer changeNotifier.Close()

	app := cmd.NewCompositionRoot(configs, db, changeNotifier)

	jobManager := jobs.NewJobManager(
		app.CreateGetStalePaymentsQueryHandler(),
		stalePaymentAge(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		NotifyDebounceMs:    goDotEnvVariable("NOTIFY_DEBOUNCE_MS"),
		StalePaymentAgeMins: goDotEnvVariable("STALE_PAYMENT_AGE_MINS"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&taskrepo.TaskDTO{},
		&riderrepo.RiderDTO{},
		&paymentrepo.StagedPaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func debounceWindow(configs cmd.Config) time.Duration {
	ms, err := strconv.Atoi(configs.NotifyDebounceMs)
	if err != nil || ms <= 0 {
		return notifier.DefaultDebounceWindow
	}
	return time.Duration(ms) * time.Millisecond
}

func stalePaymentAge(configs cmd.Config) time.Duration {
	mins, err := strconv.Atoi(configs.StalePaymentAgeMins)
	if err != nil || mins <= 0 {
		return jobs.DefaultStalePaymentAge
	}
	return time.Duration(mins) * time.Minute
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateSubmitOrderBatchCommandHandler(),
		app.CreateReconcilePaymentCommandHandler(),
		app.CreateVendorDecideOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRequestDeliveryCommandHandler(),
		app.CreateClaimTaskCommandHandler(),
		app.CreateAdvanceTaskCommandHandler(),
		app.CreateGetCandidateTasksQueryHandler(),
		app.CreateGetUncompletedVendorOrdersQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, "Failed to load spec")
		}
		return c.JSON(http.StatusOK, swagger)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
