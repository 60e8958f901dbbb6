package scenario

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	"github.com/mythosquest/mission-engine/internal/errors"
	redisclient "github.com/mythosquest/mission-engine/internal/redis"
)

const (
	scenarioKeyPrefix     = "scenario:"
	difficultyIndexPrefix = "scenario:difficulty:"

	errScenarioNil     = "scenario cannot be nil"
	errScenarioIDEmpty = "scenario ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis scenario repository
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

// NewRedis creates a new Redis-backed scenario repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Scenario == nil {
		return nil, errors.InvalidArgument(errScenarioNil)
	}
	if input.Scenario.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	key := scenarioKeyPrefix + input.Scenario.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("scenario with ID %s already exists", input.Scenario.ID)
	}

	data, err := json.Marshal(input.Scenario)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scenario")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Scenario.Difficulty != "" {
		pipe.SAdd(ctx, difficultyIndexPrefix+string(input.Scenario.Difficulty), input.Scenario.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create scenario")
	}

	return &CreateOutput{Scenario: input.Scenario}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	result, err := r.client.Get(ctx, scenarioKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get scenario")
	}

	var s mission.Scenario
	if err := json.Unmarshal([]byte(result), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal scenario")
	}

	return &GetOutput{Scenario: &s}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	key := scenarioKeyPrefix + input.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get scenario")
	}

	var existing mission.Scenario
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing scenario")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if existing.Difficulty != "" {
		pipe.SRem(ctx, difficultyIndexPrefix+string(existing.Difficulty), input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete scenario")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByDifficulty(ctx context.Context, input ListByDifficultyInput) (*ListByDifficultyOutput, error) {
	if input.Difficulty == "" {
		return nil, errors.InvalidArgument("difficulty cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, difficultyIndexPrefix+string(input.Difficulty)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read difficulty index")
	}

	out := &ListByDifficultyOutput{Scenarios: make([]*mission.Scenario, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// stale index entry; skip
				continue
			}
			return nil, err
		}
		out.Scenarios = append(out.Scenarios, got.Scenario)
	}
	return out, nil
}
