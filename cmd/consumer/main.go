package main

import (
	"log"

	"github.com/piyushraj0718/payrollmanagement/internal/app"
	"github.com/piyushraj0718/payrollmanagement/internal/bootstrap"
	"github.com/piyushraj0718/payrollmanagement/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, flush, err := bootstrap.NewLogger(cfg, "payroll-consumer")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer flush()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Error("contact consumer exited", zap.Error(err))
	}
}
