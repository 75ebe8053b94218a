package keyval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	queryCreateSlotTable = `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	queryGetSlot = `
		SELECT value
		FROM kv_slots
		WHERE key = :key
	`

	queryUpsertSlot = `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES (:key, :value, now())
		ON CONFLICT (key)
		DO UPDATE SET value = :value, updated_at = now()
	`
)

type postgresStore struct {
	db *sqlx.DB
}

// NewPostgres uses a single kv_slots table as the slot backend, creating it
// when absent. DATABASE_URL carries the DSN.
func NewPostgres() (Store, error) {
	db, err := sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Postgres: %v", err))
		return nil, err
	}

	if _, err := db.Exec(queryCreateSlotTable); err != nil {
		return nil, err
	}

	logrus.Info("Successfully connected to Postgres")
	return &postgresStore{db: db}, nil
}

func (p *postgresStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sqlx.Named(queryGetSlot, map[string]interface{}{"key": key})
	if err != nil {
		return "", err
	}
	query = p.db.Rebind(query)

	var value string
	if err := p.db.QueryRowxContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		logrus.Error(fmt.Sprintf("Error reading slot %s: %v", key, err))
		return "", err
	}
	return value, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value string) error {
	query, args, err := sqlx.Named(queryUpsertSlot, map[string]interface{}{
		"key":   key,
		"value": value,
	})
	if err != nil {
		return err
	}
	query = p.db.Rebind(query)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		logrus.Error(fmt.Sprintf("Error writing slot %s: %v", key, err))
		return err
	}
	return nil
}
