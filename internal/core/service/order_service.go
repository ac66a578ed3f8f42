package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/core/arbiter"
	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/metrics"
	"github.com/bookdrop/flash-sale/internal/port"
)

// OrderService is the public operation surface. It holds no state of its
// own; every correctness guarantee lives in the arbiter and the stores.
type OrderService struct {
	arb    *arbiter.StockArbiter
	inv    port.InventoryRepository
	ledger port.OrderLedger
	m      *metrics.Registry
}

func NewOrderService(arb *arbiter.StockArbiter, inv port.InventoryRepository, ledger port.OrderLedger, m *metrics.Registry) *OrderService {
	return &OrderService{
		arb:    arb,
		inv:    inv,
		ledger: ledger,
		m:      m,
	}
}

func (s *OrderService) GetProduct(ctx context.Context) (domain.Product, error) {
	product, err := s.inv.GetProduct(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, productID uuid.UUID) (domain.Order, error) {
	start := time.Now()

	order, err := s.arb.Purchase(ctx, productID)
	s.m.PurchaseLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			s.m.OrdersRejected.Inc()
		}
		return domain.Order{}, err
	}

	s.m.OrdersAdmitted.Inc()
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Reset(ctx context.Context) (domain.ResetSummary, error) {
	summary, err := s.arb.Reset(ctx)
	if err != nil {
		return domain.ResetSummary{}, err
	}

	s.m.Resets.Inc()
	return summary, nil
}
