// Package storage provides the optional Redis-backed audit trail for
// session event logs. The in-memory event list in pkg/eventlog remains
// the source of truth; this mirror exists for out-of-process
// inspection of finished or in-flight sessions.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/quest-engine/pkg/engine"
	"github.com/jwebster45206/quest-engine/pkg/eventlog"
)

// auditTTL bounds how long a session's trail is kept.
const auditTTL = 24 * time.Hour

// auditRecord is the wire form of one event.
type auditRecord struct {
	LocationID  int       `json:"location_id"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// RedisAuditLog appends session events to a Redis list per session.
type RedisAuditLog struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisAuditLog satisfies the engine's sink interface
var _ engine.AuditSink = (*RedisAuditLog)(nil)

// NewRedisAuditLog creates an audit log backed by the Redis instance
// at redisURL (redis:// URL form).
func NewRedisAuditLog(redisURL string, logger *slog.Logger) (*RedisAuditLog, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisAuditLog{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

func (r *RedisAuditLog) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisAuditLog) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// Append pushes one event onto the session's trail.
func (r *RedisAuditLog) Append(ctx context.Context, sessionID uuid.UUID, e *eventlog.Event) error {
	rec := auditRecord{
		LocationID:  e.ID,
		Description: e.Description,
		RecordedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	key := auditKey(sessionID)
	if err := r.client.RPush(ctx, key, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	if err := r.client.Expire(ctx, key, auditTTL).Err(); err != nil {
		r.logger.Warn("Failed to refresh audit TTL", "session_id", sessionID, "error", err)
	}
	return nil
}

// IDLog reads back the ordered location ids recorded for a session.
func (r *RedisAuditLog) IDLog(ctx context.Context, sessionID uuid.UUID) ([]int, error) {
	values, err := r.client.LRange(ctx, auditKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read audit trail: %w", err)
	}

	ids := make([]int, 0, len(values))
	for _, v := range values {
		var rec auditRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit record: %w", err)
		}
		ids = append(ids, rec.LocationID)
	}
	return ids, nil
}

// Delete removes a session's trail.
func (r *RedisAuditLog) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.client.Del(ctx, auditKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete audit trail: %w", err)
	}
	return nil
}

func auditKey(sessionID uuid.UUID) string {
	return "eventlog:" + sessionID.String()
}
