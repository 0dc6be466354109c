// Package redis stores wallet state in Redis under a configurable key prefix.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository"
	goredis "github.com/redis/go-redis/v9"
)

type KV struct {
	client goredis.UniversalClient
	prefix string
}

// NewKV wraps client. Keys are stored as prefix+key.
func NewKV(client goredis.UniversalClient, prefix string) (*KV, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &KV{client: client, prefix: prefix}, nil
}

// Dial connects to the server at url (redis://...) and verifies it responds.
func Dial(ctx context.Context, url, prefix string) (*KV, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewKV(client, prefix)
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := k.client.Get(ctx, k.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, k.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (k *KV) Close() error {
	return k.client.Close()
}
