// Package payments implements the payment-provider operations: the
// authorization reconciler plus the settlement, refund and cancellation
// orchestrators. No state is kept between calls; truth is re-derived from
// Digital River on every invocation.
package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	kafkax "github.com/ariefcatur/go-payment-connector.git/internal/kafka"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// ProcessorGateway is the slice of the Digital River client the payment
// operations use. *dr.Client satisfies it; tests fake it.
type ProcessorGateway interface {
	GetOrdersByUpstreamID(ctx context.Context, token, upstreamID string) (*dr.OrdersResponse, error)
	UpdateCheckoutWithUpstreamID(ctx context.Context, token, checkoutID, upstreamID string) (*dr.CheckoutResponse, error)
	CreateOrder(ctx context.Context, token, checkoutID string) (*dr.OrderResponse, int, error)
	GetOrderByID(ctx context.Context, token, orderID string) (*dr.OrderResponse, error)
	RefundOrder(ctx context.Context, token string, payload dr.RefundPayload) (*dr.RefundResponse, error)
	FulfillOrCancelOrder(ctx context.Context, token string, payload dr.FulfillmentPayload) (*dr.FulfillmentResponse, error)
}

// OrderReader reads OMS orders from the Platform.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID, originatingAccount string, settings platform.Settings) (*platform.Order, error)
}

// Locker serializes concurrent authorize calls for one upstream id.
// Best effort: a nil Locker (or a failing one) degrades to the raw
// lookup-then-create flow.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string)
}

// Publisher is the slice of the kafka producer the service needs.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Service struct {
	Gateway  ProcessorGateway
	Orders   OrderReader
	Lock     Locker    // optional
	Producer Publisher // optional
	Service  string
	Log      *zap.Logger
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s *Service) publish(eventType, paymentID, traceID string, payload any) {
	if s.Producer == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Service,
		TraceID:       traceID,
		CorrelationID: paymentID,
	}
	ev.Payload = kafkax.MustMarshal(payload)
	s.Producer.Publish(PartitionKey(paymentID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func decisionEvent(status string) string {
	switch status {
	case StatusApproved:
		return EventPaymentAuthorized
	case StatusDenied:
		return EventPaymentDenied
	default:
		return EventPaymentUndefined
	}
}
