package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/redis"
)

// Repository caches provider credentials keyed by provider name.
type Repository interface {
	GetProviderToken(ctx context.Context, provider string) (string, error)
	SetProviderToken(ctx context.Context, provider, token string, ttl time.Duration) error
	DeleteProviderToken(ctx context.Context, provider string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// GetProviderToken returns the cached bearer token, or empty when absent.
func (r *redis) GetProviderToken(ctx context.Context, provider string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, "provider_token:"+provider).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *redis) SetProviderToken(ctx context.Context, provider, token string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "provider_token:"+provider, token, ttl).Err()
}

func (r *redis) DeleteProviderToken(ctx context.Context, provider string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "provider_token:"+provider).Err()
}
