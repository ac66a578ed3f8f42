package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/domain"
)

// MySQLStore keeps inventory and ledger in MySQL. Admission rides on a
// conditional UPDATE: the WHERE clause carries the stock check, so check and
// decrement commit as one statement and the affected-row count is the verdict.
type MySQLStore struct {
	db        *sql.DB
	clk       clock.Clock
	productID uuid.UUID
}

func NewMySQLStore(db *sql.DB, clk clock.Clock, productID uuid.UUID) *MySQLStore {
	return &MySQLStore{
		db:        db,
		clk:       clk,
		productID: productID,
	}
}

// Seed upserts the demo product so repeated runs start from a known row.
func (s *MySQLStore) Seed(ctx context.Context, p domain.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, title, author, year, price, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`,
		p.ID.String(), p.Title, p.Author, p.Year, p.Price, p.Quantity, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("seed product: %w", err)
	}
	return nil
}

func (s *MySQLStore) GetProduct(ctx context.Context) (domain.Product, error) {
	var (
		p  domain.Product
		id string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, year, price, quantity, created_at
		FROM products WHERE id = ?`, s.productID.String(),
	).Scan(&id, &p.Title, &p.Author, &p.Year, &p.Price, &p.Quantity, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product: %w", err)
	}

	p.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse product id: %w", err)
	}
	return p, nil
}

func (s *MySQLStore) TryDecrement(ctx context.Context, productID uuid.UUID) (bool, error) {
	if productID != s.productID {
		return false, domain.ErrProductNotFound
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET quantity = quantity - 1
		WHERE id = ? AND quantity >= 1`,
		productID.String(),
	)
	if err != nil {
		return false, fmt.Errorf("decrement quantity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows == 1, nil
}

func (s *MySQLStore) ResetQuantity(ctx context.Context, quantity int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE products SET quantity = ? WHERE id = ?`,
		quantity, s.productID.String(),
	)
	if err != nil {
		return fmt.Errorf("reset quantity: %w", err)
	}
	return nil
}

func (s *MySQLStore) Append(ctx context.Context, productID uuid.UUID) (domain.Order, error) {
	order := domain.Order{
		ID:        uuid.New(),
		ProductID: productID,
		CreatedAt: s.clk.Now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, product_id, created_at)
		VALUES (?, ?, ?)`,
		order.ID.String(), order.ProductID.String(), order.CreatedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (s *MySQLStore) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, created_at
		FROM orders
		ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o          domain.Order
			id, prodID string
		)
		if err := rows.Scan(&id, &prodID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse order id: %w", err)
		}
		if o.ProductID, err = uuid.Parse(prodID); err != nil {
			return nil, fmt.Errorf("parse product id: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func (s *MySQLStore) Clear(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(deleted), nil
}
