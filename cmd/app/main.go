package main

import (
	"fmt"
	"log/slog"
	"os"

	"gatepass/cmd"
	gatepasshttp "gatepass/internal/adapters/in/http"
	gatepasspostgres "gatepass/internal/adapters/out/postgres"
	"gatepass/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	if err := gatepasspostgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateMarkReturnsOverdueCommandHandler(),
		configs.OverdueSweepSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		OverdueSweepSchedule: goDotEnvVariable("OVERDUE_SWEEP_SCHEDULE"),
	}
	if config.OverdueSweepSchedule == "" {
		// once a day, shortly after midnight
		config.OverdueSweepSchedule = "0 5 0 * * *"
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := gatepasshttp.NewServer(
		app.CreateSubmitParcelCommandHandler(),
		app.CreateProcessLogisticsCommandHandler(),
		app.CreateDecideParcelCommandHandler(),
		app.CreateResubmitParcelCommandHandler(),
		app.CreateDispatchParcelCommandHandler(),
		app.CreateConfirmReturnCommandHandler(),
		app.CreateGenerateGatePassCommandHandler(),
		app.CreateGetPendingParcelsQueryHandler(),
		app.CreateGetNeedsAttentionQueryHandler(),
		app.CreateGetParcelHistoryQueryHandler(),
		app.CreateGetNextGatePassQueryHandler(),
		app.CreateSettingsStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
