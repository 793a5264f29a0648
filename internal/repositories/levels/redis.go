package levels

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

const (
	// Key pattern: level:{id}
	levelKeyPrefix = "level:"

	// DefaultTTL is used when neither the config nor the input sets one
	DefaultTTL = 24 * time.Hour

	errRecordNil  = "record cannot be nil"
	errIDEmpty    = "level ID cannot be empty"
	errInputNil   = "input is required"
	errNotFound   = "level not found"
	errTTLInvalid = "ttl cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", errTTLInvalid)
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed level repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a record as JSON with a TTL
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errTTLInvalid)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	record := *input.Record
	now := r.clock.Now()
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal level record")
	}

	if err := r.client.Set(ctx, r.buildKey(record.ID), data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store level record in Redis")
	}

	return &CreateOutput{Record: &record}, nil
}

// Get loads a record, treating an expired record as missing
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := r.buildKey(input.ID)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNotFound).WithMeta("level_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get level record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal level record")
	}

	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("level has expired").WithMeta("level_id", input.ID)
	}

	return &GetOutput{Record: &record}, nil
}

// Delete removes a record
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete level record from Redis")
	}
	if removed == 0 {
		return nil, errors.NotFound(errNotFound).WithMeta("level_id", input.ID)
	}

	return &DeleteOutput{Deleted: true}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return levelKeyPrefix + id
}
