package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pizzayolo/backoffice-go/internal/config"
	appHTTP "github.com/pizzayolo/backoffice-go/internal/handler/http"
	"github.com/pizzayolo/backoffice-go/internal/pkg/cron"
	"github.com/pizzayolo/backoffice-go/internal/pkg/database"
	"github.com/pizzayolo/backoffice-go/internal/pkg/iiko"
	"github.com/pizzayolo/backoffice-go/internal/pkg/jwt"
	"github.com/pizzayolo/backoffice-go/internal/repository/postgresql"
	serviceAuth "github.com/pizzayolo/backoffice-go/internal/service/auth"
	balanceService "github.com/pizzayolo/backoffice-go/internal/service/balance"
	employeeService "github.com/pizzayolo/backoffice-go/internal/service/employee"
	settlementService "github.com/pizzayolo/backoffice-go/internal/service/settlement"
	syncService "github.com/pizzayolo/backoffice-go/internal/service/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.Default()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)

	erpClient := iiko.NewClient(cfg.Iiko)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	settlementSvc := settlementService.NewSettlementService(erpClient, erpClient, employeeRepo, logger)
	balanceSvc := balanceService.NewBalanceService(erpClient, balanceService.Options{}, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, logger)
	syncSvc := syncService.NewSyncService(erpClient, employeeRepo, storeRepo, logger)

	scheduler := cron.NewScheduler()
	if cfg.Sync.Enabled {
		cron.NewMasterDataJobs(syncSvc, cfg.Sync).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	reportHandler := appHTTP.NewReportHandler(settlementSvc, balanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, syncSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		reportHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
