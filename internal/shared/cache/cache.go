// Package cache holds the Redis keys shared by backend features and the
// invalidation helper every write path calls after commit.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EmployeesListKey caches GET /employees/. Employee writes and attendance
// marks both change it because employees embed their attendance records.
const EmployeesListKey = "directory:employees:list"

const DefaultTTL = 5 * time.Minute

// Invalidate deletes keys. Failures are logged and otherwise ignored; the
// entry then expires with its TTL.
func Invalidate(ctx context.Context, rdb *redis.Client, logger *zap.Logger, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Error("failed to invalidate cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}
