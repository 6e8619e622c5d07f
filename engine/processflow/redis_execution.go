package processflow

import (
	"context"
	"fmt"

	"github.com/mecsphere/appo/engine/core"
	"github.com/redis/go-redis/v9"
)

// RedisInterface defines the minimal Redis surface needed by RedisExecution.
type RedisInterface interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisExecution implements Execution on a Redis hash, for task runners that
// execute outside the engine process. All runners of one process instance
// share the hash; concurrent writes to the same variable follow Redis
// last-write-wins, matching the engine-owned bag.
type RedisExecution struct {
	client            RedisInterface
	processInstanceID core.ID
}

// NewRedisExecution creates an execution bound to one process instance.
func NewRedisExecution(client RedisInterface, processInstanceID core.ID) *RedisExecution {
	return &RedisExecution{client: client, processInstanceID: processInstanceID}
}

func (e *RedisExecution) key() string {
	return fmt.Sprintf("appo:flowvars:%s", e.processInstanceID)
}

// SetVariable writes one variable of the process instance.
func (e *RedisExecution) SetVariable(ctx context.Context, key, value string) error {
	if err := e.client.HSet(ctx, e.key(), key, value).Err(); err != nil {
		return fmt.Errorf("setting flow variable %s: %w", key, err)
	}
	return nil
}

// Variables reads back all variables of the process instance.
func (e *RedisExecution) Variables(ctx context.Context) (map[string]string, error) {
	vars, err := e.client.HGetAll(ctx, e.key()).Result()
	if err != nil {
		return nil, fmt.Errorf("reading flow variables: %w", err)
	}
	return vars, nil
}

// Discard removes the variable hash once the process instance completes or
// is terminated.
func (e *RedisExecution) Discard(ctx context.Context) error {
	if err := e.client.Del(ctx, e.key()).Err(); err != nil {
		return fmt.Errorf("discarding flow variables: %w", err)
	}
	return nil
}
