// Package memory provides a process-local key-value medium for development
// and tests. Contents are lost on restart.
package memory

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository"
	gocache "github.com/patrickmn/go-cache"
)

type KV struct {
	cache *gocache.Cache
}

func NewKV() *KV {
	return &KV{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (k *KV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := k.cache.Get(key)
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

func (k *KV) Put(_ context.Context, key string, value []byte) error {
	k.cache.Set(key, append([]byte(nil), value...), gocache.NoExpiration)
	return nil
}
