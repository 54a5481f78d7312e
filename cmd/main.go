package main

import (
	"fxwatch/internal/app"

	"github.com/sirupsen/logrus"
)

// @title fxwatch API
// @version 1.0
// @description FX rate tracking with tiered historical retention, trends and threshold alerts
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application terminated: %v", err)
	}
}
