package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/iliyamo/restaurant-ops/internal/config"
)

// Open connects to MySQL and verifies the connection. Pool sizing follows
// the DB_POOL_* configuration: the open-connection ceiling is the base pool
// size plus the allowed overflow, idle connections are kept at the base
// size, and connections are recycled after the configured interval.
func Open(cfg config.Config) (*sql.DB, error) {
	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DBPoolSize + cfg.DBMaxOverflow)
	db.SetMaxIdleConns(cfg.DBPoolSize)
	db.SetConnMaxLifetime(cfg.DBPoolRecycle)

	if cfg.DBPoolPrePing {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DBPoolTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return nil, err
		}
	}
	return db, nil
}
