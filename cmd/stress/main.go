package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookdrop/flash-sale/internal/adapter/storage"
	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/arbiter"
	"github.com/bookdrop/flash-sale/internal/core/domain"
)

const (
	initialStock  = 20
	totalRequests = 50
	raceRuns      = 1000
)

func main() {
	ctx := context.Background()

	// Scenario 1: two near-simultaneous purchases against a single unit,
	// repeated. A correct arbiter never admits both.
	doubleAdmissions := 0
	for run := 0; run < raceRuns; run++ {
		arb, productID := newArbiter(1)

		var admitted atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(delay time.Duration) {
				defer wg.Done()
				time.Sleep(delay)
				if _, err := arb.Purchase(ctx, productID); err == nil {
					admitted.Add(1)
				}
			}(time.Duration(i) * 50 * time.Microsecond)
		}
		wg.Wait()

		if admitted.Load() > 1 {
			doubleAdmissions++
		}
	}

	fmt.Println("========== RACE PROBE RESULTS ==========")
	fmt.Printf("Runs:              %d\n", raceRuns)
	fmt.Printf("Double admissions: %d\n", doubleAdmissions)
	if doubleAdmissions == 0 {
		fmt.Println("PASS: never admitted two orders for one unit")
	} else {
		fmt.Println("FAIL: oversold")
	}

	// Scenario 2: burst of requests against limited stock.
	arb, productID := newArbiter(initialStock)

	var successCount atomic.Int32
	var failCount atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := arb.Purchase(ctx, productID); err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== BURST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)

	if success == initialStock && fail == totalRequests-initialStock {
		fmt.Printf("PASS: exactly %d orders succeeded, %d failed\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: expected %d success/%d fail, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, fail)
	}
}

func newArbiter(stock int) (*arbiter.StockArbiter, uuid.UUID) {
	product := domain.Product{
		ID:       uuid.New(),
		Title:    "The Go Programming Language",
		Author:   "Alan A. A. Donovan",
		Year:     2015,
		Price:    decimal.RequireFromString("39.99"),
		Quantity: stock,
	}

	store := storage.NewMemoryStore(product, clock.NewSystem())
	return arbiter.New(store, store, stock), product.ID
}
