package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	_ "salon_api/docs"
	"salon_api/internal/adapter/http/dto/request"
	"salon_api/internal/adapter/http/handlers"
	"salon_api/internal/adapter/http/middleware"
	"salon_api/internal/infrastructure/config"
	"salon_api/internal/infrastructure/payments"
	"salon_api/internal/usecase"
	"salon_api/internal/usecase/interfaces"
	"salon_api/pkg/logger"
	"salon_api/pkg/metrics"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	ServiceDetail *handlers.ServiceDetailHandler
	Lifecycle     *handlers.LifecycleHandler
	SalePayment   *handlers.SalePaymentHandler
}

// NewRouter builds the gin engine: middleware, /swagger, /metrics and the v1 API.
func NewRouter(h Handlers, log logger.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log, m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceDetailRoutes(v1, h.ServiceDetail, h.Lifecycle, h.SalePayment)
	addSaleRoutes(v1, h.SalePayment)
	return router
}

// Run wires the storage backend, use cases and handlers, then serves until
// SIGINT or SIGTERM.
func Run(cfg *config.Config, log logger.Logger) error {
	gin.SetMode(cfg.GinMode)
	if err := request.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	roleIDs, err := cfg.EmployeeRoles()
	if err != nil {
		return err
	}

	m := metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.Payment.Mock, log)
	if err != nil {
		log.Warn("[routes] Mercado Pago gateway not configured; payments will fail", "err", err)
	} else {
		gateway = mpGateway
	}

	detailUseCase := usecase.NewServiceDetailUseCase(store.details, store.directory, usecase.NewStaticRoleResolver(roleIDs), log)
	queryUseCase := usecase.NewServiceDetailQueryUseCase(store.details)
	lifecycleUseCase := usecase.NewLifecycleUseCase(store.details, log, m)
	paymentUseCase := usecase.NewSalePaymentUseCase(store.payments, store.sales, gateway, usecase.SalePaymentOptions{
		MockMode:        cfg.Payment.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}, log, m)

	router := NewRouter(Handlers{
		ServiceDetail: handlers.NewServiceDetailHandler(detailUseCase, queryUseCase, log),
		Lifecycle:     handlers.NewLifecycleHandler(lifecycleUseCase, log),
		SalePayment:   handlers.NewSalePaymentHandler(paymentUseCase, cfg.Payment.Mock, log),
	}, log, m, prometheus.DefaultGatherer)

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[routes] starting HTTP server", "port", cfg.Port, "storage", cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func setMiddlewares(router *gin.Engine, log logger.Logger, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Metrics(m))
}
