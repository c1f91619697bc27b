package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository tracks failed login attempts per email. Counters expire on
// their own, so a quiet account resets without cleanup jobs.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

const loginAttemptTTL = 15 * time.Minute

// RecordFailedLogin increments the failure counter for an email and returns
// the new count.
func (r *RedisRepository) RecordFailedLogin(ctx context.Context, email string) (int64, error) {
	key := "login_attempts:" + email
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.rdb.Expire(ctx, key, loginAttemptTTL).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// FailedLoginCount returns the current failure counter for an email.
func (r *RedisRepository) FailedLoginCount(ctx context.Context, email string) (int64, error) {
	key := "login_attempts:" + email
	count, err := r.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

// ResetFailedLogins clears the failure counter after a successful login.
func (r *RedisRepository) ResetFailedLogins(ctx context.Context, email string) error {
	return r.rdb.Del(ctx, "login_attempts:"+email).Err()
}
