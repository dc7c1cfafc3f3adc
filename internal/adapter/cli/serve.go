package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"autocare_api/internal/adapter/http/handlers"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/adapter/http/routes"
	"autocare_api/internal/infrastructure/config"
	"autocare_api/internal/infrastructure/payments"
	"autocare_api/internal/infrastructure/realtime"
	"autocare_api/internal/infrastructure/storage"
	"autocare_api/internal/infrastructure/telemetry"
	"autocare_api/internal/usecase"
	"autocare_api/internal/usecase/interfaces"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTelemetry := telemetry.Setup(ctx, cfg.Telemetry)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	router, closeApp, err := buildRouter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeApp()

	// No WriteTimeout: the job feed keeps websocket connections open.
	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           otelhttp.NewHandler(router, cfg.Telemetry.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[cli][serve] listening on %s storage=%s", server.Addr, cfg.StorageDriver)
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

	log.Printf("[cli][serve] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[cli][serve] shutdown error: %v", err)
		return err
	}
	return nil
}

// buildRouter wires storage, providers and use cases into the HTTP router.
func buildRouter(ctx context.Context, cfg config.Config) (http.Handler, func(), error) {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("[cli][serve] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var media interfaces.IMediaStorage
	minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	switch {
	case errors.Is(err, storage.ErrMinIONotConfigured):
		log.Printf("[cli][serve] media storage not configured, attachments disabled")
	case err != nil:
		log.Printf("[cli][serve] media storage unavailable, attachments disabled: %v", err)
	default:
		media = minioStorage
	}

	if cfg.Auth.JWTSecret == "" {
		log.Printf("[cli][serve] WARNING auth disabled, trusting actor headers %s/%s; set JWT_SECRET outside local runs", middleware.HeaderActorID, middleware.HeaderActorRole)
	}

	hub := realtime.NewHub()
	paymentUseCase := usecase.NewBillPaymentUseCase(st.payments, st.jobs, gateway)
	jobUseCase := usecase.NewJobUseCase(st.jobs, st.orders, paymentUseCase, media, hub)
	orderUseCase := usecase.NewOrderUseCase(st.orders, st.jobs, hub)

	router := routes.NewRouter(cfg, routes.Handlers{
		Jobs:     handlers.NewJobHandler(jobUseCase),
		Orders:   handlers.NewOrderHandler(orderUseCase),
		Payments: handlers.NewPaymentHandler(paymentUseCase),
		JobFeed:  handlers.NewJobFeedHandler(hub, cfg.CORSAllowedOrigins),
	})
	return router, st.close, nil
}
