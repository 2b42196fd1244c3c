package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/repair-shop-platform/docs"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/handlers"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/cache"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/config"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/health"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/metrics"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/storage"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/tracing"
	"github.com/aaravmahajanofficial/repair-shop-platform/pkg/sendGrid"
	"github.com/aaravmahajanofficial/repair-shop-platform/pkg/stripe"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Repair Shop Platform API
//	@version					1.0
//	@description				Sales, stock, repair tickets and reports for a phone repair shop.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", slog.String("error", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Init(context.Background(), cfg.OTel)
	if err != nil {
		slog.Error("❌ Error initialising tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// shared by the login limiter and the lookup cache
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	imageStore, err := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.PublicPath)
	if err != nil {
		slog.Error("❌ Error preparing the upload directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.Users, repository.NewRateLimitRepo(redisClient, cfg), jwtKey, tokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	catalogService := service.NewCatalogService(redisCache, cfg.Cache.DefaultTTL, repos.Categories, repos.Marcas, repos.Fallas)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productService := service.NewProductService(repos.Products, repos.Categories, imageStore)
	productHandler := handlers.NewProductHandler(productService)
	clientService := service.NewClientService(repos.Clients)
	clientHandler := handlers.NewClientHandler(clientService)
	notificationService := service.NewNotificationService(repos.Notifications, repos.Users, repos.Repairs, sendGridClient)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	repairService := service.NewRepairService(repos.Repairs, notificationService, time.Now)
	repairHandler := handlers.NewRepairHandler(repairService)
	saleService := service.NewSaleService(repos.Sales, time.Now)
	saleHandler := handlers.NewSaleHandler(saleService)
	reportService := service.NewReportService(repos.Reports, time.Now)
	reportHandler := handlers.NewReportHandler(reportService)
	paymentService := service.NewPaymentService(stripeClient, cfg.Stripe.Currency)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	authMiddleware := middleware.NewAuthMiddleware(userService)
	adminOnly := authMiddleware.RequireDepartment(models.DepartmentAdmin)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	api := cfg.APIPrefix
	auth := authMiddleware.Authenticate

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST "+api+"/register", userHandler.Register())
	routerMux.HandleFunc("POST "+api+"/login", userHandler.Login())
	routerMux.HandleFunc("GET "+api+"/users/me", auth(userHandler.Profile()))
	routerMux.HandleFunc("GET "+api+"/users", auth(adminOnly(userHandler.ListUsers())))

	routerMux.HandleFunc("GET "+api+"/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET "+api+"/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST "+api+"/products", auth(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT "+api+"/products/{id}", auth(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE "+api+"/products/{id}", auth(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST "+api+"/products/upload", auth(productHandler.UploadImage()))

	for _, kind := range []models.LookupKind{models.LookupCategories, models.LookupMarcas, models.LookupFallas} {
		base := api + "/" + string(kind)
		routerMux.HandleFunc("GET "+base, catalogHandler.List(kind))
		routerMux.HandleFunc("GET "+base+"/{id}", catalogHandler.Get(kind))
		routerMux.HandleFunc("POST "+base, auth(catalogHandler.Create(kind)))
		routerMux.HandleFunc("PUT "+base+"/{id}", auth(catalogHandler.Update(kind)))
		routerMux.HandleFunc("DELETE "+base+"/{id}", auth(catalogHandler.Delete(kind)))
	}

	routerMux.HandleFunc("GET "+api+"/clients", auth(clientHandler.ListClients()))
	routerMux.HandleFunc("POST "+api+"/clients", auth(clientHandler.CreateClient()))
	routerMux.HandleFunc("PUT "+api+"/clients/{id}", auth(clientHandler.UpdateClient()))
	routerMux.HandleFunc("DELETE "+api+"/clients/{id}", auth(clientHandler.DeleteClient()))
	routerMux.HandleFunc("POST "+api+"/clients/search", auth(clientHandler.SearchClients()))

	routerMux.HandleFunc("GET "+api+"/reparaciones", auth(repairHandler.ListRepairs()))
	routerMux.HandleFunc("POST "+api+"/reparaciones", auth(repairHandler.CreateRepair()))
	routerMux.HandleFunc("GET "+api+"/reparaciones/{id}", auth(repairHandler.GetRepair()))
	routerMux.HandleFunc("PUT "+api+"/reparaciones/{id}", auth(repairHandler.UpdateRepair()))
	routerMux.HandleFunc("DELETE "+api+"/reparaciones/{id}", auth(repairHandler.DeleteRepair()))
	routerMux.HandleFunc("PATCH "+api+"/reparaciones/estatus", auth(repairHandler.BulkUpdateStatus()))

	routerMux.HandleFunc("GET "+api+"/reparaciones/tabla", auth(reportHandler.RepairTable()))
	routerMux.HandleFunc("GET "+api+"/reporte-general", auth(reportHandler.GeneralSalesReport()))
	for _, grouping := range []models.RepairGrouping{
		models.GroupByStatus, models.GroupByTechnician, models.GroupByBrand, models.GroupByFault, models.GroupByDate,
	} {
		routerMux.HandleFunc("GET "+api+"/reparaciones-por-"+string(grouping), auth(reportHandler.RepairsBy(grouping)))
	}

	routerMux.HandleFunc("GET "+api+"/detalle-ventas", auth(saleHandler.ListAllLines()))
	routerMux.HandleFunc("GET "+api+"/detalle-ventas/{id}", auth(saleHandler.GetLine()))
	routerMux.HandleFunc("GET "+api+"/detalle-ventas/productos-vendidos", auth(reportHandler.ProductsSoldPerDay()))
	routerMux.HandleFunc("GET "+api+"/detalle-ventas/productos-por-categoria", auth(reportHandler.ProductsPerCategory()))
	routerMux.HandleFunc("GET "+api+"/detalle-ventas/productos-vendidos-tiempo", auth(reportHandler.ProductSoldOverTime()))

	routerMux.HandleFunc("GET "+api+"/ventas", auth(saleHandler.ListSales()))
	routerMux.HandleFunc("POST "+api+"/ventas", auth(saleHandler.CreateSale()))
	routerMux.HandleFunc("GET "+api+"/ventas/{id}", auth(saleHandler.GetSale()))
	routerMux.HandleFunc("PUT "+api+"/ventas/{id}", auth(saleHandler.UpdateSale()))
	routerMux.HandleFunc("DELETE "+api+"/ventas/{id}", auth(saleHandler.DeleteSale()))
	routerMux.HandleFunc("GET "+api+"/ventas/{id}/detalles", auth(saleHandler.ListSaleLines()))

	routerMux.HandleFunc("POST "+api+"/payments/create-order", auth(paymentHandler.CreateOrder()))
	routerMux.HandleFunc("POST "+api+"/payments/capture-order", auth(paymentHandler.CaptureOrder()))

	routerMux.HandleFunc("GET "+api+"/notifications", auth(adminOnly(notificationHandler.ListNotifications())))

	routerMux.Handle("GET "+cfg.Uploads.PublicPath, http.StripPrefix(cfg.Uploads.PublicPath, http.FileServer(http.Dir(cfg.Uploads.Dir))))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
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

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Failed to flush traces", slog.String("error", err.Error()))
	}
}
