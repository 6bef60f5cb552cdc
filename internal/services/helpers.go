package services

import (
	"context"
	"time"
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func todayString(now func() time.Time) string {
	return now().Format("2006-01-02")
}
