package spawnstate

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	redisclient "github.com/mythosquest/mission-engine/internal/redis"
)

const (
	spawnStateKeyPrefix = "spawnstate:"

	errStateNil         = "spawn state cannot be nil"
	errScenarioIDEmpty  = "scenario ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis spawn-state repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed spawn-state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.ScenarioID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	data, err := json.Marshal(input.State)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spawn state")
	}

	if err := r.client.Set(ctx, spawnStateKeyPrefix+input.State.ScenarioID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save spawn state")
	}

	return &SaveOutput{State: input.State}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ScenarioID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	result, err := r.client.Get(ctx, spawnStateKeyPrefix+input.ScenarioID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spawn state for scenario %s not found", input.ScenarioID)
		}
		return nil, errors.Wrapf(err, "failed to get spawn state")
	}

	var state mission.ObjectiveSpawnState
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spawn state")
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ScenarioID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	deleted, err := r.client.Del(ctx, spawnStateKeyPrefix+input.ScenarioID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete spawn state")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("spawn state for scenario %s not found", input.ScenarioID)
	}

	return &DeleteOutput{}, nil
}
