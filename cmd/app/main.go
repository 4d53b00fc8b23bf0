package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front desk service covering bookings, check-ins, payments, housekeeping and reporting.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
