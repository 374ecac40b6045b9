package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/rosterhub/roster-backend-go/internal/config"
	"github.com/rosterhub/roster-backend-go/internal/fixtures"
	appHTTP "github.com/rosterhub/roster-backend-go/internal/handler/http"
	"github.com/rosterhub/roster-backend-go/internal/pkg/database"
	"github.com/rosterhub/roster-backend-go/internal/repository/postgresql"
	employeeService "github.com/rosterhub/roster-backend-go/internal/service/employee"
	shiftService "github.com/rosterhub/roster-backend-go/internal/service/shift"
	tipsService "github.com/rosterhub/roster-backend-go/internal/service/tips"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "roster-backend"),
		slog.String("env", cfg.App.Env),
	)

	currencyRepo := postgresql.NewCurrencyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	tipsRepo := postgresql.NewWeeklyTipsRepository(db)
	txManager := postgresql.NewTxManager(db)

	if cfg.App.SeedDemoData {
		seeder := fixtures.NewSeeder(currencyRepo, employeeRepo, shiftRepo, tipsRepo, logger)
		if err := seeder.Seed(context.Background()); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
	}

	empService := employeeService.NewEmployeeService(employeeRepo)
	shfService := shiftService.NewShiftService(shiftRepo, employeeRepo)
	tipService := tipsService.NewTipsService(txManager, tipsRepo, currencyRepo, shiftRepo, employeeRepo, logger)

	router := appHTTP.NewRouter(
		appHTTP.NewTipsHandler(tipService),
		appHTTP.NewRosterHandler(shfService),
		appHTTP.NewShiftHandler(shfService),
		appHTTP.NewEmployeeHandler(empService, shfService),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
