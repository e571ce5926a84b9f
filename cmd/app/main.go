package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Mearylis/Restaurant-Controller/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	if err := app.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DefaultPricingPolicy: goDotEnvVariable("DEFAULT_PRICING_POLICY"),
		PaymentDelay:         paymentDelay(),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func paymentDelay() time.Duration {
	raw := goDotEnvVariable("PAYMENT_DELAY")
	if raw == "" {
		return 500 * time.Millisecond
	}
	delay, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid PAYMENT_DELAY %q: %v", raw, err)
	}
	return delay
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
