package payments

import (
	"context"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// The settlement, refund and cancellation orchestrators share one shape:
// fetch the current Digital River order by transaction reference, build the
// corresponding payload from its item list, issue the call. Unlike
// authorize, these contracts are allowed to fail the request outright, so
// downstream errors surface as resolver errors.

func (s *Service) getOrder(ctx context.Context, settings platform.Settings, tid, authorizationID string, log *zap.Logger) (*dr.OrderResponse, error) {
	orderID := tid
	if orderID == "" {
		orderID = authorizationID
	}
	order, err := s.Gateway.GetOrderByID(ctx, settings.DigitalRiverToken, orderID)
	if err != nil {
		log.Error("get order by id failed", zap.String("drOrderId", orderID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "Get order by ID error using Digital River Order ID %s", orderID)
	}
	return order, nil
}

// Settle captures the full quantity of every item on the order.
func (s *Service) Settle(ctx context.Context, settings platform.Settings, req SettlementRequest, traceID string) (*SettlementResponse, error) {
	log := s.log().With(
		zap.String("paymentId", req.PaymentID),
		zap.String("tid", req.TID),
	)
	log.Info("settlement request received")

	order, err := s.getOrder(ctx, settings, req.TID, "", log)
	if err != nil {
		return nil, err
	}

	payload := dr.FulfillmentPayload{OrderID: order.ID}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, dr.FulfillmentItem{
			ItemID:   item.ID,
			Quantity: item.Quantity,
		})
	}

	settle, err := s.Gateway.FulfillOrCancelOrder(ctx, settings.DigitalRiverToken, payload)
	if err != nil {
		log.Error("fulfillment failed", zap.String("drOrderId", order.ID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "Settlement error for Digital River Order ID %s", order.ID)
	}
	log.Info("settled", zap.String("drOrderId", order.ID), zap.String("settleId", settle.ID))

	s.publish(EventPaymentSettled, req.PaymentID, traceID, OperationPayload{
		PaymentID:   req.PaymentID,
		RequestID:   req.RequestID,
		OperationID: settle.ID,
		DROrderID:   order.ID,
		Value:       req.Value,
	})

	return &SettlementResponse{
		PaymentID: req.PaymentID,
		RequestID: req.RequestID,
		SettleID:  settle.ID,
		Message:   "Successfully settled Digital River Order ID " + order.ID,
		Value:     req.Value,
	}, nil
}

// Refund issues an amount-only refund against the order.
func (s *Service) Refund(ctx context.Context, settings platform.Settings, req RefundRequest, traceID string) (*RefundResponse, error) {
	log := s.log().With(
		zap.String("paymentId", req.PaymentID),
		zap.String("tid", req.TID),
		zap.String("authorizationId", req.AuthorizationID),
	)
	log.Info("refund request received")

	order, err := s.getOrder(ctx, settings, req.TID, req.AuthorizationID, log)
	if err != nil {
		return nil, err
	}

	refund, err := s.Gateway.RefundOrder(ctx, settings.DigitalRiverToken, dr.RefundPayload{
		OrderID:  order.ID,
		Currency: order.Currency,
		Amount:   req.Value,
	})
	if err != nil {
		log.Error("refund failed", zap.String("drOrderId", order.ID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "Refund failure for Digital River Order ID %s", order.ID)
	}
	log.Info("refunded", zap.String("drOrderId", order.ID), zap.String("refundId", refund.ID))

	s.publish(EventPaymentRefunded, req.PaymentID, traceID, OperationPayload{
		PaymentID:   req.PaymentID,
		RequestID:   req.RequestID,
		OperationID: refund.ID,
		DROrderID:   order.ID,
		Value:       req.Value,
	})

	return &RefundResponse{
		PaymentID: req.PaymentID,
		RequestID: req.RequestID,
		RefundID:  refund.ID,
		Message:   "Successfully refunded Digital River Order ID " + order.ID,
		Value:     req.Value,
	}, nil
}

// Cancel cancels the full quantity of every item on the order.
func (s *Service) Cancel(ctx context.Context, settings platform.Settings, req CancellationRequest, traceID string) (*CancellationResponse, error) {
	log := s.log().With(
		zap.String("paymentId", req.PaymentID),
		zap.String("tid", req.TID),
		zap.String("authorizationId", req.AuthorizationID),
	)
	log.Info("cancellation request received")

	order, err := s.getOrder(ctx, settings, req.TID, req.AuthorizationID, log)
	if err != nil {
		return nil, err
	}

	payload := dr.FulfillmentPayload{OrderID: order.ID}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, dr.FulfillmentItem{
			ItemID:         item.ID,
			CancelQuantity: item.Quantity,
		})
	}

	cancel, err := s.Gateway.FulfillOrCancelOrder(ctx, settings.DigitalRiverToken, payload)
	if err != nil {
		log.Error("cancellation failed", zap.String("drOrderId", order.ID), zap.Error(err))
		return nil, apperr.NewResolverError(err, "Cancel order error for Digital River Order ID %s", order.ID)
	}
	log.Info("cancelled", zap.String("drOrderId", order.ID), zap.String("cancellationId", cancel.ID))

	s.publish(EventPaymentCancelled, req.PaymentID, traceID, OperationPayload{
		PaymentID:   req.PaymentID,
		RequestID:   req.RequestID,
		OperationID: cancel.ID,
		DROrderID:   order.ID,
	})

	return &CancellationResponse{
		PaymentID:      req.PaymentID,
		RequestID:      req.RequestID,
		TransactionID:  req.TransactionID,
		CancellationID: cancel.ID,
		Message:        "Successfully cancelled Digital River Order ID " + order.ID,
	}, nil
}
