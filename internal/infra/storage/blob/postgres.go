package blob

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const blobsTable = "blobs"

// CreateBlobsTableSQL схема таблицы значений
const CreateBlobsTableSQL = `CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore хранит значения в таблице blobs(key, value)
type PostgresStore struct {
	db dbmetrics.DBExecutor
}

func NewPostgresStore(db dbmetrics.DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate создает таблицу, если её нет
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, CreateBlobsTableSQL); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrWrite, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrRead, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrRead, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	query, args, err := buildSetQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrWrite, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrWrite, err)
	}
	return nil
}

func buildGetQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("value").
		From(blobsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func buildSetQuery(key string, value []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(blobsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}
