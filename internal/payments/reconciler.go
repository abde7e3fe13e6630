package payments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// Authorize reconciles a payment-authorization request against Digital
// River. It never returns an error for downstream failures: the Platform's
// contract wants a decision, so every failure past validation becomes a
// structured denial.
//
// The flow: idempotent lookup by upstream id, payment-method gate, checkout
// id resolution from the OMS order, upstream-id linkage, order creation.
// Steps are idempotent or overwrite-safe, so a partial failure is recovered
// by the Platform simply calling authorize again.
func (s *Service) Authorize(ctx context.Context, settings platform.Settings, req AuthorizationRequest, traceID string) AuthorizationResponse {
	log := s.log().With(
		zap.String("paymentId", req.PaymentID),
		zap.String("orderId", req.OrderID),
		zap.String("reference", req.Reference),
	)
	log.Info("authorize request received")

	resp := s.authorize(ctx, settings, req, log)
	s.publish(decisionEvent(resp.Status), req.PaymentID, traceID, DecisionPayload{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Reference: req.Reference,
		TID:       resp.TID,
		Status:    resp.Status,
		Message:   resp.Message,
	})
	return resp
}

func (s *Service) authorize(ctx context.Context, settings platform.Settings, req AuthorizationRequest, log *zap.Logger) AuthorizationResponse {
	// Serialization point for concurrent authorize calls on the same
	// upstream id. Contention yields undefined so the Platform retries
	// after the in-flight attempt has settled; a lock-backend failure
	// degrades to the unlocked flow.
	if s.Lock != nil && req.Reference != "" {
		acquired, err := s.Lock.TryLock(ctx, req.Reference)
		if err == nil {
			if !acquired {
				log.Warn("authorization already in progress for upstream id")
				return AuthorizationResponse{
					PaymentID: req.PaymentID,
					Status:    StatusUndefined,
					Message:   fmt.Sprintf("Authorization already in progress for Upstream ID %s", req.Reference),
				}
			}
			defer s.Lock.Unlock(ctx, req.Reference)
		} else {
			log.Warn("advisory lock unavailable, proceeding without it", zap.Error(err))
		}
	}

	// Idempotent lookup, skipped when there is no upstream id to match. A
	// prior authorize call may already have created the order; lookup
	// failures are logged and ignored so a flaky list endpoint cannot block
	// a first-time authorization.
	if req.Reference != "" {
		ordersResp, err := s.Gateway.GetOrdersByUpstreamID(ctx, settings.DigitalRiverToken, req.Reference)
		if err != nil {
			log.Error("get orders by upstream id failed", zap.Error(err))
		} else if len(ordersResp.Data) > 0 {
			order := ordersResp.Data[0]
			status := StatusForOrderState(order.State)
			log.Info("existing order located",
				zap.String("drOrderId", order.ID),
				zap.String("state", order.State),
				zap.String("status", status))
			return AuthorizationResponse{
				PaymentID: req.PaymentID,
				TID:       order.ID,
				Message:   fmt.Sprintf("Existing Digital River order located using Upstream ID %s, state is '%s'", req.Reference, order.State),
				Status:    status,
			}
		}
	}

	if CapabilityOf(req.PaymentMethod) != CapabilitySupported {
		log.Warn("payment method not supported", zap.String("paymentMethod", req.PaymentMethod))
		return AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   "Payment method not supported",
			Status:    StatusDenied,
		}
	}

	// The checkout must have been created earlier, in the tax or
	// checkout-creation flow; authorization never creates one.
	omsOrderID := req.OrderID + "-01"
	originatingAccount := originatingAccountFromURL(req.URL)

	orderData, err := s.Orders.GetOrder(ctx, omsOrderID, originatingAccount, settings)
	if err != nil {
		log.Error("get platform order failed", zap.Error(err))
		return AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   fmt.Sprintf("Get order %s error: %v", req.OrderID, err),
			Status:    StatusDenied,
		}
	}

	checkoutID := orderData.CheckoutID()
	if checkoutID == "" {
		log.Error("no checkout id found in order custom data")
		return AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   "No Digital River Checkout ID found in order data",
			Status:    StatusDenied,
		}
	}

	if _, err := s.Gateway.UpdateCheckoutWithUpstreamID(ctx, settings.DigitalRiverToken, checkoutID, req.Reference); err != nil {
		log.Error("update checkout with upstream id failed",
			zap.String("checkoutId", checkoutID), zap.Error(err))
		return AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   fmt.Sprintf("Update checkout error for Checkout ID %s: %v", checkoutID, err),
			Status:    StatusDenied,
		}
	}

	orderResp, code, err := s.Gateway.CreateOrder(ctx, settings.DigitalRiverToken, checkoutID)
	if err != nil {
		log.Error("create order failed",
			zap.String("checkoutId", checkoutID), zap.Error(err))
		return AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   fmt.Sprintf("Order creation error for Checkout ID %s: %v", checkoutID, err),
			Status:    StatusDenied,
		}
	}

	status := StatusForOrderState(orderResp.State)
	log.Info("order created",
		zap.String("drOrderId", orderResp.ID),
		zap.String("state", orderResp.State),
		zap.String("status", status))

	return AuthorizationResponse{
		PaymentID:       req.PaymentID,
		AuthorizationID: orderResp.ID,
		TID:             orderResp.ID,
		Code:            strconv.Itoa(code),
		Message: fmt.Sprintf(
			"Successfully created Digital River order using Checkout ID %s. See TID field for Digital River Order ID. Digital River order state is %s.",
			checkoutID, orderResp.State),
		Status: status,
	}
}

// originatingAccountFromURL pulls the first subdomain label out of the
// storefront callback URL; the OMS needs it to resolve cross-account orders.
func originatingAccountFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.Split(u.Hostname(), ".")[0]
}
