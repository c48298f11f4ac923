package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/abhisek/thermoviz/internal/logger"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var llmEventColumns = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

// eventRepo implements EventRepo on llm_request_events and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	log := logger.FromContext(ctx).WithPrefix("event_repo")

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args, err := sqlBuilder.Insert("llm_request_events").
		Columns(llmEventColumns[1:]...).
		Values(
			seqNum, time.Now().UTC().UnixMilli(),
			data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save LLM request event: %v", err)
		return fmt.Errorf("save LLM request event: %w", err)
	}
	log.Debug("recorded %s call seq=%d purpose=%s success=%v", data.Provider, seqNum, data.Purpose, data.Success)
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := sqlBuilder.Select(llmEventColumns...).
		From("llm_request_events").
		OrderBy("sequence DESC")

	if opts.After > 0 {
		q = q.Where(squirrel.Gt{"sequence": opts.After})
	}
	if opts.Before > 0 {
		q = q.Where(squirrel.Lt{"sequence": opts.Before})
	}
	if !opts.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"timestamp": opts.From.UTC().UnixMilli()})
	}
	if !opts.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"timestamp": opts.To.UTC().UnixMilli()})
	}
	if opts.Purpose != "" {
		q = q.Where(squirrel.Eq{"purpose": opts.Purpose})
	}
	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	query, args, err := sqlBuilder.Select(llmEventColumns...).
		From("llm_request_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usage(ctx, "model")
}

// usage aggregates by column, which is always a fixed identifier.
func (r *eventRepo) usage(ctx context.Context, column string) ([]LLMUsage, error) {
	query, args, err := sqlBuilder.Select(
		column,
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0)",
		"COALESCE(SUM(input_tokens), 0)",
		"COALESCE(SUM(output_tokens), 0)",
		"COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)",
	).
		From("llm_request_events").
		GroupBy(column).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		var key string
		if err := rows.Scan(&key, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		if column == "model" {
			u.Model = key
		} else {
			u.Purpose = key
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	var ts int64
	err := row.Scan(
		&e.ID, &e.Sequence, &ts,
		&e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	e.Timestamp = time.UnixMilli(ts).UTC()
	return &e, nil
}
