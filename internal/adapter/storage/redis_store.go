package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/domain"
)

const (
	stockKeyPrefix  = "stock:"
	ordersKeyPrefix = "orders:"
)

// decrementScript performs check-and-decrement server-side: Redis runs the
// script as one unit, so no client observes the gap between the read and the
// DECRBY.
var decrementScript = redis.NewScript(`
local key = KEYS[1]

local current = redis.call('GET', key)
if not current then
	return 0
end

current = tonumber(current)
if current >= 1 then
	redis.call('DECRBY', key, 1)
	return 1
end

return 0
`)

// clearScript reads the ledger length and deletes it as one unit so the
// reported deleted count is exact.
var clearScript = redis.NewScript(`
local key = KEYS[1]
local n = redis.call('LLEN', key)
redis.call('DEL', key)
return n
`)

type redisOrder struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisStore keeps the stock count in a plain key mutated only by Lua and the
// ledger in a list of JSON entries. Product metadata is immutable for the
// life of the demo and stays in-process.
type RedisStore struct {
	client  *redis.Client
	clk     clock.Clock
	product domain.Product
}

func NewRedisStore(client *redis.Client, clk clock.Clock, product domain.Product) *RedisStore {
	return &RedisStore{
		client:  client,
		clk:     clk,
		product: product,
	}
}

func (s *RedisStore) stockKey() string {
	return stockKeyPrefix + s.product.ID.String()
}

func (s *RedisStore) ordersKey() string {
	return ordersKeyPrefix + s.product.ID.String()
}

// Seed writes the initial stock count and empties the ledger.
func (s *RedisStore) Seed(ctx context.Context) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.stockKey(), s.product.Quantity, 0)
	pipe.Del(ctx, s.ordersKey())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed stock: %w", err)
	}
	return nil
}

func (s *RedisStore) GetProduct(ctx context.Context) (domain.Product, error) {
	quantity, err := s.client.Get(ctx, s.stockKey()).Int()
	if err != nil {
		return domain.Product{}, fmt.Errorf("get stock: %w", err)
	}

	p := s.product
	p.Quantity = quantity
	return p, nil
}

func (s *RedisStore) TryDecrement(ctx context.Context, productID uuid.UUID) (bool, error) {
	if productID != s.product.ID {
		return false, domain.ErrProductNotFound
	}

	result, err := decrementScript.Run(ctx, s.client, []string{s.stockKey()}).Int()
	if err != nil {
		return false, fmt.Errorf("run decrement script: %w", err)
	}
	return result == 1, nil
}

func (s *RedisStore) ResetQuantity(ctx context.Context, quantity int) error {
	if err := s.client.Set(ctx, s.stockKey(), quantity, 0).Err(); err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

func (s *RedisStore) Append(ctx context.Context, productID uuid.UUID) (domain.Order, error) {
	order := domain.Order{
		ID:        uuid.New(),
		ProductID: productID,
		CreatedAt: s.clk.Now(),
	}

	payload, err := json.Marshal(redisOrder{
		ID:        order.ID.String(),
		ProductID: order.ProductID.String(),
		CreatedAt: order.CreatedAt,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("marshal order: %w", err)
	}

	if err := s.client.RPush(ctx, s.ordersKey(), payload).Err(); err != nil {
		return domain.Order{}, fmt.Errorf("push order: %w", err)
	}
	return order, nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Order, error) {
	entries, err := s.client.LRange(ctx, s.ordersKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("range orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(entries))
	for _, entry := range entries {
		var ro redisOrder
		if err := json.Unmarshal([]byte(entry), &ro); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}

		id, err := uuid.Parse(ro.ID)
		if err != nil {
			return nil, fmt.Errorf("parse order id: %w", err)
		}
		prodID, err := uuid.Parse(ro.ProductID)
		if err != nil {
			return nil, fmt.Errorf("parse product id: %w", err)
		}

		orders = append(orders, domain.Order{
			ID:        id,
			ProductID: prodID,
			CreatedAt: ro.CreatedAt,
		})
	}
	return orders, nil
}

func (s *RedisStore) Clear(ctx context.Context) (int, error) {
	deleted, err := clearScript.Run(ctx, s.client, []string{s.ordersKey()}).Int()
	if err != nil {
		return 0, fmt.Errorf("run clear script: %w", err)
	}
	return deleted, nil
}
