package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// RedisCartRepository stores carts as JSON values with a TTL, so abandoned
// carts expire on their own instead of accumulating.
type RedisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func cartKey(id string) string {
	return "cart:" + id
}

func (r *RedisCartRepository) Get(id string) (models.Cart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := r.rdb.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Cart{}, ErrCartNotFound
	}
	if err != nil {
		return models.Cart{}, err
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (r *RedisCartRepository) Save(cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.rdb.Set(ctx, cartKey(cart.ID), data, r.ttl).Err()
}

func (r *RedisCartRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return r.rdb.Del(ctx, cartKey(id)).Err()
}
