package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"goa.design/clue/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"fortiercars/internal/config"
	"fortiercars/internal/metrics"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second

	// sqliteBusyTimeout keeps concurrent writers waiting instead of failing with SQLITE_BUSY.
	sqliteBusyTimeout = "_pragma=busy_timeout(5000)"
)

// Open connects to the configured database and verifies the connection. The returned handle is
// shared by every request for the life of the process.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.IsPostgres() {
		log.Printf(ctx, "[DB] Connecting to PostgreSQL database...")
		dialector = postgres.Open(cfg.GetPostgresDSN())
	} else {
		log.Printf(ctx, "[DB] Connecting to SQLite database...")
		dbPath := cfg.GetSQLitePath()
		sqlDB, err := sql.Open("sqlite", sqliteDSN(dbPath))
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		// SQLite allows a single writer; one connection serializes every statement.
		sqlDB.SetMaxOpenConns(1)
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	// Never log SQL: queries carry customer contact details.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.IsPostgres() {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}

		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

		log.Printf(ctx, "[DB] Connection pool configured: maxOpen=%d, maxIdle=%d", maxOpenConns, maxIdleConns)
	}

	if err := Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	log.Printf(ctx, "[DB] Database connected")
	return db, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteBusyTimeout
	}
	return path + "?" + sqliteBusyTimeout
}

// Ping tests the database connection
func Ping(ctx context.Context, db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordPoolStats publishes the pool's connection counts to prometheus.
func RecordPoolStats(db *gorm.DB) (*sql.DBStats, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	stats := sqlDB.Stats()
	metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	return &stats, nil
}
