package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookdrop/flash-sale/internal/adapter/storage"
	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/arbiter"
	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/core/service"
	"github.com/bookdrop/flash-sale/internal/metrics"
)

func newTestMux(t *testing.T, initialStock int) (http.Handler, domain.Product) {
	t.Helper()

	product := domain.Product{
		ID:        uuid.New(),
		Title:     "test-book",
		Author:    "tester",
		Year:      2015,
		Price:     decimal.RequireFromString("39.99"),
		Quantity:  initialStock,
		CreatedAt: clock.NewSystem().Now(),
	}

	store := storage.NewMemoryStore(product, clock.NewSystem())
	arb := arbiter.New(store, store, initialStock)
	svc := service.NewOrderService(arb, store, store, metrics.NewRegistry())

	h := NewHTTPHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Root)
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/products", h.Product)
	mux.HandleFunc("/api/products/", h.ProductByID)
	mux.HandleFunc("/api/orders", h.Orders)
	mux.HandleFunc("/api/reset", h.Reset)

	return CORS([]string{"http://localhost:3000"}, mux), product
}

func doJSON(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGetProduct(t *testing.T) {
	mux, product := newTestMux(t, 3)

	rec := doJSON(t, mux, http.MethodGet, "/api/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != product.ID.String() {
		t.Errorf("expected id %s, got %s", product.ID, resp.ID)
	}
	if resp.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", resp.Quantity)
	}
	if resp.Price != 39.99 {
		t.Errorf("expected price 39.99, got %v", resp.Price)
	}
}

func TestGetProductByID(t *testing.T) {
	mux, product := newTestMux(t, 1)

	rec := doJSON(t, mux, http.MethodGet, "/api/products/"+product.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/products/"+uuid.New().String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/products/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestCreateOrder(t *testing.T) {
	mux, product := newTestMux(t, 1)

	rec := doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: product.ID.String()})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var order OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if order.ProductID != product.ID.String() {
		t.Errorf("expected product id %s, got %s", product.ID, order.ProductID)
	}
	if _, err := time.Parse(time.RFC3339Nano, order.CreatedAt); err != nil {
		t.Errorf("created_at not RFC 3339: %v", err)
	}

	// Stock is gone; the next attempt conflicts.
	rec = doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: product.ID.String()})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 when sold out, got %d", rec.Code)
	}
}

func TestCreateOrder_BadRequests(t *testing.T) {
	mux, _ := newTestMux(t, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid body, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: "not-a-uuid"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed product id, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: uuid.New().String()})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", rec.Code)
	}
}

func TestListOrders(t *testing.T) {
	mux, product := newTestMux(t, 2)

	doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: product.ID.String()})
	doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: product.ID.String()})

	rec := doJSON(t, mux, http.MethodGet, "/api/orders", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var orders []OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	first, _ := time.Parse(time.RFC3339Nano, orders[0].CreatedAt)
	second, _ := time.Parse(time.RFC3339Nano, orders[1].CreatedAt)
	if second.Before(first) {
		t.Error("orders not in admission order")
	}
}

func TestReset(t *testing.T) {
	mux, product := newTestMux(t, 2)

	doJSON(t, mux, http.MethodPost, "/api/orders", CreateOrderRequest{ProductID: product.ID.String()})

	rec := doJSON(t, mux, http.MethodPost, "/api/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ResetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.DeletedOrders != 1 {
		t.Errorf("expected 1 deleted order, got %d", resp.DeletedOrders)
	}
	if resp.QuantityResetTo != 2 {
		t.Errorf("expected quantity reset to 2, got %d", resp.QuantityResetTo)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/reset", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET reset, got %d", rec.Code)
	}
}

func TestHealthAndRoot(t *testing.T) {
	mux, _ := newTestMux(t, 1)

	rec := doJSON(t, mux, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from /, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 from unknown path, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	mux, _ := newTestMux(t, 1)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected allow-origin %q", got)
	}

	// Unlisted origins get no CORS headers.
	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unlisted origin must not be allowed")
	}
}
