package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brewcode/brewcode/internal/models"
)

// defaultStageTypes seeds the stage type lookup table.
var defaultStageTypes = []string{
	"Preparation",
	"Mash",
	"Boil",
	"Primary Fermentation",
	"Secondary Fermentation",
	"Conditioning",
	"Bottling",
}

// ConnectAndMigrate opens the database behind the DSN, applies the GORM
// migrations, and seeds the stage types. Postgres connections are retried a
// few times to let the server come up.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	gdb, err := connect(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func connect(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty, check the environment configuration")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	if !IsPostgres(dsn) {
		// Plain SQLite paths need their parent directory; file: URIs and
		// in-memory databases manage themselves.
		if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
			if dir := filepath.Dir(dsn); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("create database directory: %w", err)
				}
			}
		}
		gdb, err := gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		return gdb, nil
	}

	var gdb *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			return gdb, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect to postgres after retries: %w", err)
}

// Migrate applies the schema and seeds lookup data. Safe to run repeatedly.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.StageType{},
		&models.Recipe{},
		&models.RecipeStage{},
		&models.RecipeIngredient{},
	); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	for _, name := range defaultStageTypes {
		st := models.StageType{Name: name}
		if err := gdb.Where(models.StageType{Name: name}).FirstOrCreate(&st).Error; err != nil {
			return fmt.Errorf("seed stage type %q: %w", name, err)
		}
	}
	return nil
}
