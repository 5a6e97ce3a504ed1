// @title           Employee Shift Management API
// @version         1.0
// @description     REST backend for employee records, shift assignment and attendance tracking

// @contact.name   API Support

// @host      localhost:3000
// @BasePath  /api
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/NaomiMeseret/Employee-shift-management/internal/app/routes"
	"github.com/NaomiMeseret/Employee-shift-management/internal/domain/models"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/database"
	Logger "github.com/NaomiMeseret/Employee-shift-management/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; environment variables may be set another way
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
	} else {
		Logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	// Keep retrying until the database comes up
	pool := database.Connect(cfg)
	db := pool.GetDB()

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Shift{},
		&models.AttendanceRecord{},
	); err != nil {
		Logger.Error("database migration failed: %v", err)
		os.Exit(1)
	}
	Logger.Info("database migration completed")

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}
