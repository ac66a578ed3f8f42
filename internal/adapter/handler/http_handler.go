package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/core/service"
)

type HTTPHandler struct {
	orderService *service.OrderService
}

func NewHTTPHandler(orderService *service.OrderService) *HTTPHandler {
	return &HTTPHandler{orderService: orderService}
}

type ProductResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Year     int     `json:"year"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	CreatedAt string `json:"created_at"`
}

type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
}

type ResetResponse struct {
	DeletedOrders   int `json:"deleted_orders"`
	QuantityResetTo int `json:"quantity_reset_to"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func productResponse(p domain.Product) ProductResponse {
	price, _ := p.Price.Float64()
	return ProductResponse{
		ID:       p.ID.String(),
		Title:    p.Title,
		Author:   p.Author,
		Year:     p.Year,
		Price:    price,
		Quantity: p.Quantity,
	}
}

func orderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID.String(),
		ProductID: o.ProductID.String(),
		// RFC 3339 with nanoseconds keeps sub-50ms admissions distinguishable.
		CreatedAt: o.CreatedAt.Format(time.RFC3339Nano),
	}
}

// Product serves GET /api/products: the product currently on sale.
func (h *HTTPHandler) Product(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	product, err := h.orderService.GetProduct(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productResponse(product))
}

// ProductByID serves GET /api/products/{id}.
func (h *HTTPHandler) ProductByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.orderService.GetProduct(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if product.ID != id {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	writeJSON(w, http.StatusOK, productResponse(product))
}

// Orders serves POST /api/orders (purchase) and GET /api/orders (ledger).
func (h *HTTPHandler) Orders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createOrder(w, r)
	case http.MethodGet:
		h.listOrders(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orderResponse(order))
}

func (h *HTTPHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

// Reset serves POST /api/reset: clears the ledger and restores the baseline.
func (h *HTTPHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.orderService.Reset(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResetResponse{
		DeletedOrders:   summary.DeletedOrders,
		QuantityResetTo: summary.QuantityResetTo,
	})
}

func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Flash Sale API is running"})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "out of stock"})
	case errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "product not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
