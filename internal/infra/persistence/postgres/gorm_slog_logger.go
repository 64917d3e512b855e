package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// storeSlowQuery is tuned for the per-user lookups of a dispatch run
const storeSlowQuery = 200 * time.Millisecond

// gormSlogLogger sends GORM output to slog. Missing rows are a normal answer
// for settings lookups and are never logged as errors.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

// newGormSlogLogger routes GORM output into slog. Debug mode logs every query.
func newGormSlogLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	if base != nil {
		base = base.With(slog.String("component", "gorm"))
	}

	return &gormSlogLogger{logger: base, level: level, slow: storeSlowQuery}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, need logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < need {
		return
	}

	l.logger.LogAttrs(ctx, level, "[GORM] "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level = slog.LevelInfo
		msg   = "[GORM] Query"
		extra slog.Attr
	)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "[GORM] Query failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "[GORM] Slow query", slog.Duration("slowThreshold", l.slow)
	case l.level >= logger.Info && err == nil:
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("op", statementKind(sql)),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// statementKind returns the leading SQL keyword, e.g. DELETE for retention batches
func statementKind(sql string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToUpper(keyword)
}
