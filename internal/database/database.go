package database

import (
	"fmt"
	"log"
	"time"

	"crm-service/internal/config"
	"crm-service/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Customer{},
		&models.CustomerPhoto{},
		&models.Task{},
		&models.Product{},
		&models.SyncRun{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_external_id_unique ON customers(external_id) WHERE external_id <> ''",
		"CREATE INDEX IF NOT EXISTS idx_customers_email_lower ON customers(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_customers_city ON customers(city)",
		"CREATE INDEX IF NOT EXISTS idx_customers_created_at ON customers(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_customer_photos_customer_position ON customer_photos(customer_id, position)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_customer_kind ON tasks(customer_id, kind)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_due_at ON tasks(due_at)",
		"CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)",
		"CREATE INDEX IF NOT EXISTS idx_sync_runs_kind_started ON sync_runs(kind, started_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// PruneSyncRuns deletes run history older than the cutoff.
func (db *DB) PruneSyncRuns(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	result := db.DB.Where("started_at < ?", cutoff).Delete(&models.SyncRun{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune sync runs: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// SeedProducts inserts catalog entries whose slug is not present yet.
func (db *DB) SeedProducts(products []models.Product) error {
	for i := range products {
		var existing models.Product
		if err := db.DB.Where("slug = ?", products[i].Slug).First(&existing).Error; err == nil {
			continue
		}

		if err := db.DB.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Slug, err)
		}
	}

	return nil
}

// DefaultProducts mirrors db/seeds for databases created through AutoMigrate.
func DefaultProducts() []models.Product {
	return []models.Product{
		{Slug: "standard-box", Name: "Standard box", Price: decimal.NewFromInt(10)},
		{Slug: "premium-box", Name: "Premium box", Price: decimal.NewFromInt(100)},
		{Slug: "gift-card", Name: "Gift card", Price: decimal.NewFromInt(25)},
	}
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	autoMigrated := false
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
		autoMigrated = true
	} else if !AutoMigrateEnabled() {
		autoMigrated = true
	}

	if autoMigrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if err := db.SeedProducts(DefaultProducts()); err != nil {
			log.Printf("Warning: failed to seed products: %v", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
