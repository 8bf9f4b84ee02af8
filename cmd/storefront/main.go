package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/config"
	"storefront/internal/health"
	"storefront/internal/metrics"
	repository "storefront/internal/repositories"
	service "storefront/internal/services"
	"storefront/internal/session"
	"storefront/internal/view"

	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup (runs pending migrations)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis-backed session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		slog.Error("❌ Error parsing view templates", "error", err.Error())
		os.Exit(1)
	}

	catalogService := service.NewCatalogService(repos.Product)
	catalogHandler := handlers.NewCatalogHandler(catalogService, renderer)
	cartService := service.NewCartService()
	cartHandler := handlers.NewCartHandler(cartService, sessions, renderer)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService, sessions, renderer)
	paymentService := service.NewPaymentService(repos.Payment)
	paymentHandler := handlers.NewPaymentHandler(paymentService, sessions, renderer)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", catalogHandler.Home())
	routerMux.HandleFunc("GET /products", catalogHandler.Products())
	routerMux.HandleFunc("GET /single_product", catalogHandler.SingleProduct())
	routerMux.HandleFunc("GET /about", catalogHandler.About())
	routerMux.HandleFunc("GET /cart", cartHandler.ViewCart())
	routerMux.HandleFunc("POST /add_to_cart", cartHandler.AddToCart())
	routerMux.HandleFunc("POST /remove_product", cartHandler.RemoveProduct())
	routerMux.HandleFunc("POST /edit_product_quantity", cartHandler.EditQuantity())
	routerMux.HandleFunc("GET /checkout", orderHandler.Checkout())
	routerMux.HandleFunc("POST /place_order", orderHandler.PlaceOrder())
	routerMux.HandleFunc("GET /payment", paymentHandler.PaymentPage())
	routerMux.HandleFunc("GET /verify_payment", paymentHandler.VerifyPayment())
	routerMux.HandleFunc("GET /thank_you", paymentHandler.ThankYou())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Session(cfg.Session.CookieName)(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
