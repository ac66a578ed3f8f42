package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bookdrop/flash-sale/internal/adapter/handler/pb"
	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedOrderServiceServer
	orderService *service.OrderService
}

func NewGRPCHandler(orderService *service.OrderService) *GRPCHandler {
	return &GRPCHandler{orderService: orderService}
}

func (h *GRPCHandler) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	productID, err := uuid.Parse(req.GetProductId())
	if err != nil {
		return &pb.PurchaseResponse{
			Success: false,
			Message: "invalid product id",
		}, nil
	}

	order, err := h.orderService.CreateOrder(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return &pb.PurchaseResponse{
				Success: false,
				Message: "out of stock",
			}, nil
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return &pb.PurchaseResponse{
				Success: false,
				Message: "product not found",
			}, nil
		}
		return &pb.PurchaseResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	return &pb.PurchaseResponse{
		Success:         true,
		Message:         "order placed successfully",
		OrderId:         order.ID.String(),
		CreatedAtUnixMs: order.CreatedAt.UnixMilli(),
	}, nil
}
