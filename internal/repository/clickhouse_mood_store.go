package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"MarketMood/internal/domain/models"
	domrepo "MarketMood/internal/domain/repository"
	pkgch "MarketMood/pkg/clickhouse"
	applogger "MarketMood/pkg/logger"
	"MarketMood/pkg/util"
)

// CHMoodStore implements MoodStore backed by ClickHouse.
// daily_moods is a ReplacingMergeTree keyed by (symbol, date), so an insert
// for an existing key is an upsert once merges run; reads use FINAL.
type CHMoodStore struct {
	client *pkgch.Client
	db     *sql.DB
	l      *applogger.Logger
}

func NewCHMoodStore(ch *pkgch.Client) *CHMoodStore {
	return &CHMoodStore{client: ch, db: ch.DB()}
}

// SetLogger injects a structured logger.
func (s *CHMoodStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHMoodStore) Get(ctx context.Context, symbol, date string) (*models.DailyMood, error) {
	const q = `
        SELECT symbol, toString(date), rsi_score, sentiment_score, article_count, updated_at
        FROM daily_moods FINAL
        WHERE symbol = ? AND date = ?
        LIMIT 1
    `
	var m models.DailyMood
	row := s.db.QueryRowContext(ctx, q, symbol, date)
	err := row.Scan(&m.Symbol, &m.Date, &m.RSIScore, &m.SentimentScore, &m.ArticleCount, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domrepo.ErrNotFound
		}
		if s.l != nil {
			s.l.Error("clickhouse mood get error",
				applogger.String("symbol", symbol),
				applogger.String("date", date),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("get mood: %w", err)
	}
	return &m, nil
}

func (s *CHMoodStore) Upsert(ctx context.Context, m *models.DailyMood) error {
	start := time.Now()
	day, ok := util.ParseISODate(m.Date)
	if !ok {
		return fmt.Errorf("upsert mood: bad date %q", m.Date)
	}

	const q = `
        INSERT INTO daily_moods (symbol, date, rsi_score, sentiment_score, article_count, updated_at)
        VALUES (?, ?, ?, ?, ?, now())
    `
	if _, err := s.db.ExecContext(ctx, q, m.Symbol, day, m.RSIScore, m.SentimentScore, m.ArticleCount); err != nil {
		if s.l != nil {
			s.l.Error("clickhouse mood upsert error",
				applogger.String("symbol", m.Symbol),
				applogger.String("date", m.Date),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("upsert mood: %w", err)
	}

	if s.l != nil {
		s.l.Debug("clickhouse mood upsert ok",
			applogger.String("symbol", m.Symbol),
			applogger.String("date", m.Date),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return nil
}

// Recent returns up to limit records for a symbol, newest first.
func (s *CHMoodStore) Recent(ctx context.Context, symbol string, limit int) ([]models.DailyMood, error) {
	const q = `
        SELECT symbol, toString(date), rsi_score, sentiment_score, article_count, updated_at
        FROM daily_moods FINAL
        WHERE symbol = ?
        ORDER BY date DESC
        LIMIT ?
    `
	rows, err := s.db.QueryContext(ctx, q, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("recent moods: %w", err)
	}
	defer rows.Close()

	out := make([]models.DailyMood, 0, limit)
	for rows.Next() {
		var m models.DailyMood
		if err := rows.Scan(&m.Symbol, &m.Date, &m.RSIScore, &m.SentimentScore, &m.ArticleCount, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *CHMoodStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *CHMoodStore) Close() error {
	return s.client.Close()
}

// SchemaStatements returns the idempotent DDL for the mood store.
func SchemaStatements(database string) []string {
	return []string{
		fmt.Sprintf(`CREATE DATABASE IF NOT EXISTS %s`, database),
		fmt.Sprintf(`
            CREATE TABLE IF NOT EXISTS %s.daily_moods (
                symbol          LowCardinality(String),
                date            Date,
                rsi_score       Float64,
                sentiment_score Float64,
                article_count   UInt32,
                updated_at      DateTime DEFAULT now()
            )
            ENGINE = ReplacingMergeTree(updated_at)
            ORDER BY (symbol, date)
        `, database),
	}
}
