package utils

import (
	"context"
	"time"
)

const (
	// DefaultDBTimeout bounds a single row-level repository call.
	DefaultDBTimeout = 5 * time.Second

	// ReportDBTimeout bounds the aggregate report queries, which scan whole
	// date ranges of sales and repairs.
	ReportDBTimeout = 20 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithReportTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, ReportDBTimeout)
}
