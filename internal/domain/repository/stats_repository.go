package repository

import (
	"context"
)

type StatsRepository interface {
	Count(ctx context.Context, collection string) (int64, error)
}
