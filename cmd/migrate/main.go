package main

import (
	"fmt"
	"log"
	"os"

	signalconfig "stocksphere-signal/internal/signal/config"
	pkgconfig "stocksphere-signal/pkg/config"
	"stocksphere-signal/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var configPath string

func getDSN(dbConfig pkgconfig.Database) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.DBName,
		dbConfig.SSLMode)
}

func runMigrations(direction string) {
	cfg, err := signalconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	migrateLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = migrateLogger.Sync() }()

	m, err := migrate.New("file://migrations", getDSN(cfg.Database))
	if err != nil {
		migrateLogger.Fatal("Failed to create migration instance", logger.ErrorField(err))
	}

	var migrationErr error
	switch direction {
	case "up":
		migrationErr = m.Up()
	case "down":
		migrationErr = m.Steps(-1)
	}

	switch {
	case migrationErr == migrate.ErrNoChange:
		migrateLogger.Info("Signals schema already up to date")
	case migrationErr != nil:
		migrateLogger.Fatal("Migration failed", logger.ErrorField(migrationErr), logger.StringField("direction", direction))
	case direction == "up":
		migrateLogger.Info("Applied signals schema migrations")
	default:
		migrateLogger.Info("Reverted last signals schema migration")
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		migrateLogger.Error("Migration source error on close", logger.ErrorField(srcErr))
	}
	if dbErr != nil {
		migrateLogger.Error("Migration database error on close", logger.ErrorField(dbErr))
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("down")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-signal.yaml", "Path to the configuration file")

	rootCmd.AddCommand(upCmd, downCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
