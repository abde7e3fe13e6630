package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/config"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-payment-connector.git/internal/kafka"
	"github.com/ariefcatur/go-payment-connector.git/internal/payments"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
	"github.com/ariefcatur/go-payment-connector.git/internal/redisx"
	"github.com/ariefcatur/go-payment-connector.git/internal/tax"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Redis backs the per-upstream-id advisory lock.
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for payment decision events.
	prod := kafkax.NewProducer(cfg.KafkaBrokers, payments.TopicPaymentDecision, 1024)
	prod.Start(ctx)

	drClient := dr.New(cfg.DigitalRiverBase)
	platformClient := platform.New(cfg.PlatformBase, cfg.PlatformToken)

	svc := &payments.Service{
		Gateway:  drClient,
		Orders:   platformClient,
		Lock:     &redisx.AuthorizeLock{Redis: rdb},
		Producer: prod,
		Service:  cfg.ServiceName,
		Log:      log,
	}

	taxSvc := &tax.Service{
		Platform: platformClient,
		Gateway:  drClient,
		Log:      log,
	}

	router := httpx.NewRouter()
	ph := &httpx.PaymentsHandler{
		Payments: svc,
		Settings: platformClient,
		AppID:    cfg.AppID,
		Log:      log,
	}
	ph.Register(router)
	ch := &httpx.CheckoutHandler{
		Settings: platformClient,
		Platform: platformClient,
		Gateway:  drClient,
		Tax:      taxSvc,
		AppID:    cfg.AppID,
		Log:      log,
	}
	ch.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
