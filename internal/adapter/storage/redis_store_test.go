package storage

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func setupRedisStore(t *testing.T, quantity int) (*RedisStore, domain.Product, func()) {
	client := getRedisClient(t)
	ctx := context.Background()

	product := domain.Product{
		ID:       uuid.New(),
		Title:    "redis-test-book",
		Quantity: quantity,
	}

	store := NewRedisStore(client, clock.NewSystem(), product)
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cleanup := func() {
		client.Del(ctx, store.stockKey(), store.ordersKey())
		client.Close()
	}
	return store, product, cleanup
}

func TestRedisTryDecrement(t *testing.T) {
	store, product, cleanup := setupRedisStore(t, 1)
	defer cleanup()
	ctx := context.Background()

	ok, err := store.TryDecrement(ctx, product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected admission")
	}

	if ok, _ := store.TryDecrement(ctx, product.ID); ok {
		t.Error("expected rejection on empty stock")
	}

	snapshot, err := store.GetProduct(ctx)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if snapshot.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", snapshot.Quantity)
	}
}

func TestRedisTryDecrement_Concurrent(t *testing.T) {
	initialStock := 10
	totalRequests := 30
	store, product, cleanup := setupRedisStore(t, initialStock)
	defer cleanup()
	ctx := context.Background()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.TryDecrement(ctx, product.ID)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	if admitted.Load() != int32(initialStock) {
		t.Errorf("expected %d admissions, got %d", initialStock, admitted.Load())
	}
	snapshot, _ := store.GetProduct(ctx)
	if snapshot.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", snapshot.Quantity)
	}
}

func TestRedisLedger(t *testing.T) {
	store, product, cleanup := setupRedisStore(t, 5)
	defer cleanup()
	ctx := context.Background()

	first, err := store.Append(ctx, product.ID)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := store.Append(ctx, product.ID)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	orders, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != first.ID || orders[1].ID != second.ID {
		t.Error("orders not in admission order")
	}
	if orders[0].ProductID != product.ID {
		t.Errorf("expected product id %s, got %s", product.ID, orders[0].ProductID)
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}

	deleted, _ = store.Clear(ctx)
	if deleted != 0 {
		t.Errorf("expected 0 deleted on second clear, got %d", deleted)
	}
}

func TestRedisTryDecrement_UnknownProduct(t *testing.T) {
	store, _, cleanup := setupRedisStore(t, 1)
	defer cleanup()

	_, err := store.TryDecrement(context.Background(), uuid.New())
	if err != domain.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestRedisResetQuantity(t *testing.T) {
	store, _, cleanup := setupRedisStore(t, 0)
	defer cleanup()
	ctx := context.Background()

	if err := store.ResetQuantity(ctx, 4); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snapshot, _ := store.GetProduct(ctx)
	if snapshot.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", snapshot.Quantity)
	}
}
