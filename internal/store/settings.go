package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

type settingsRepo struct {
	db *sql.DB
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sqlBuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build query: %w", err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	query, args, err := sqlBuilder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC().UnixMilli()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	query, args, err := sqlBuilder.Delete("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
