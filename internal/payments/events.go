package payments

import (
	"encoding/json"
	"time"
)

const (
	EventPaymentAuthorized = "PaymentAuthorized"
	EventPaymentDenied     = "PaymentDenied"
	EventPaymentUndefined  = "PaymentUndefined"
	EventPaymentSettled    = "PaymentSettled"
	EventPaymentRefunded   = "PaymentRefunded"
	EventPaymentCancelled  = "PaymentCancelled"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // paymentId
	Payload       json.RawMessage `json:"payload"`
}

type DecisionPayload struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id,omitempty"`
	Reference string `json:"reference,omitempty"`
	TID       string `json:"tid,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

type OperationPayload struct {
	PaymentID   string  `json:"payment_id"`
	RequestID   string  `json:"request_id,omitempty"`
	OperationID string  `json:"operation_id"` // settle/refund/cancellation id
	DROrderID   string  `json:"dr_order_id"`
	Value       float64 `json:"value,omitempty"`
}
