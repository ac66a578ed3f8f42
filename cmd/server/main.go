package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	"github.com/bookdrop/flash-sale/internal/adapter/handler"
	"github.com/bookdrop/flash-sale/internal/adapter/handler/pb"
	"github.com/bookdrop/flash-sale/internal/adapter/storage"
	"github.com/bookdrop/flash-sale/internal/clock"
	"github.com/bookdrop/flash-sale/internal/core/arbiter"
	"github.com/bookdrop/flash-sale/internal/core/domain"
	"github.com/bookdrop/flash-sale/internal/core/service"
	"github.com/bookdrop/flash-sale/internal/metrics"
	"github.com/bookdrop/flash-sale/internal/port"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultGRPCAddr    = ":50051"
	defaultBackend     = "memory"
	defaultMySQLDSN    = "root:root@tcp(localhost:3306)/flashsale?parseTime=true"
	defaultRedisAddr   = "localhost:6379"
	defaultStock       = 1
	defaultCORSOrigins = "http://localhost:3000"
	defaultProductID   = "3f3ea243-7d47-4cd5-9c64-bf2e4ec9c7f5"

	shutdownTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpAddr := getEnv("HTTP_ADDR", defaultHTTPAddr)
	grpcAddr := getEnv("GRPC_ADDR", defaultGRPCAddr)
	backend := getEnv("STORAGE_BACKEND", defaultBackend)
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", defaultCORSOrigins), ",")

	initialStock := defaultStock
	if raw := os.Getenv("INITIAL_STOCK"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Fatalf("invalid INITIAL_STOCK %q", raw)
		}
		initialStock = n
	}

	productID, err := uuid.Parse(getEnv("PRODUCT_ID", defaultProductID))
	if err != nil {
		log.Fatalf("invalid PRODUCT_ID: %v", err)
	}

	clk := clock.NewSystem()
	product := domain.Product{
		ID:        productID,
		Title:     "The Go Programming Language",
		Author:    "Alan A. A. Donovan",
		Year:      2015,
		Price:     decimal.RequireFromString("39.99"),
		Quantity:  initialStock,
		CreatedAt: clk.Now(),
	}

	var (
		inv     port.InventoryRepository
		ledger  port.OrderLedger
		cleanup func()
	)

	switch backend {
	case "memory":
		store := storage.NewMemoryStore(product, clk)
		inv, ledger = store, store
		cleanup = func() {}
		log.Println("using in-memory storage")

	case "mysql":
		db, err := sql.Open("mysql", getEnv("MYSQL_DSN", defaultMySQLDSN))
		if err != nil {
			log.Fatalf("failed to open mysql: %v", err)
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}

		store := storage.NewMySQLStore(db, clk, productID)
		if err := store.Seed(ctx, product); err != nil {
			log.Fatalf("failed to seed mysql: %v", err)
		}
		inv, ledger = store, store
		cleanup = func() { db.Close() }
		log.Println("connected to mysql")

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", defaultRedisAddr),
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}

		store := storage.NewRedisStore(rdb, clk, product)
		if err := store.Seed(ctx); err != nil {
			log.Fatalf("failed to seed redis: %v", err)
		}
		inv, ledger = store, store
		cleanup = func() { rdb.Close() }
		log.Println("connected to redis")

	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
	}

	arb := arbiter.New(inv, ledger, initialStock)
	reg := metrics.NewRegistry()
	orderService := service.NewOrderService(arb, inv, ledger, reg)
	log.Printf("initialized stock: %s = %d", productID, initialStock)

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcServer, handler.NewGRPCHandler(orderService))

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// HTTP server
	httpHandler := handler.NewHTTPHandler(orderService)
	mux := http.NewServeMux()
	mux.HandleFunc("/", httpHandler.Root)
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/products", httpHandler.Product)
	mux.HandleFunc("/api/products/", httpHandler.ProductByID)
	mux.HandleFunc("/api/orders", httpHandler.Orders)
	mux.HandleFunc("/api/reset", httpHandler.Reset)
	mux.Handle("/metrics", reg.Handler())

	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: handler.CORS(corsOrigins, mux),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	cleanup()
	log.Println("connections closed")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
