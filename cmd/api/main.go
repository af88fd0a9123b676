package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/server"
	"app/internal/usecase"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; vars may come from the environment directly
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.GoEnv)

	gormDB, err := db.Connect()
	if err != nil {
		log.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Description{},
		&model.OnlineInfo{},
		&model.Dimensions{},
		&model.Barcode{},
		&model.PriceSet{},
		&model.Warehouse{},
		&model.StockLevel{},
	); err != nil {
		log.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	// repository, usecase, handler
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	productUC := usecase.NewProductUsecase(productRepo)
	productH := handler.NewProductHandler(productUC)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(productH)
	log.Info("api listening", "addr", addr)
	if err := server.Start(addr, e); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
