package showtimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Cache кэш снапшотов сеансов в Redis
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	keys   []string
}

// NewCache создает кэш поверх клиента Redis
// keys перечисляет все ключи снапшотов, сбрасываемые при Invalidate
func NewCache(client *redis.Client, prefix string, ttl time.Duration, keys ...string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		keys:   keys,
	}
}

// Connect создает клиента Redis и проверяет соединение
// Возвращает nil, если Redis недоступен: кэширование в этом случае отключается
func Connect(ctx context.Context, addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

// Get возвращает снапшот по ключу; ok=false, если снапшота нет
func (c *Cache) Get(ctx context.Context, key string) ([]domain.Showtime, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	showtimes := make([]domain.Showtime, 0, len(entries))
	for _, e := range entries {
		showtimes = append(showtimes, e.toDomain())
	}
	return showtimes, true, nil
}

// Set сохраняет снапшот с TTL
func (c *Cache) Set(ctx context.Context, key string, showtimes []domain.Showtime) error {
	entries := make([]entry, 0, len(showtimes))
	for _, s := range showtimes {
		entries = append(entries, fromDomain(s))
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}

	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate удаляет все снапшоты после изменения данных
func (c *Cache) Invalidate(ctx context.Context) error {
	if len(c.keys) == 0 {
		return nil
	}

	keys := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		keys = append(keys, c.key(k))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: invalidate: %v", ErrCacheWrite, err)
	}
	return nil
}

func (c *Cache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}
