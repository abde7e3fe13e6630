package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/payments"
)

// PaymentsHandler exposes the Platform's payment-provider contract:
// authorize, settle, refund, cancel, plus the method listing and the
// inbound pass-through.
type PaymentsHandler struct {
	Payments *payments.Service
	Settings SettingsLoader
	AppID    string
	Log      *zap.Logger
}

func (h *PaymentsHandler) Register(r *chi.Mux) {
	r.Get("/_v/payment-methods", h.paymentMethods)
	r.Post("/_v/authorizations", h.authorize)
	r.Post("/_v/settlements", h.settle)
	r.Post("/_v/refunds", h.refund)
	r.Post("/_v/cancellations", h.cancel)
	r.Post("/_v/inbound", h.inbound)
}

func (h *PaymentsHandler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payments.PaymentMethodsResponse{
		PaymentMethods: payments.SupportedMethods(),
	})
}

func (h *PaymentsHandler) authorize(w http.ResponseWriter, r *http.Request) {
	var req payments.AuthorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		h.Log.Error("get app settings failed", zap.Error(err))
		// Still a decision, never an exception: the Platform's contract.
		writeJSON(w, http.StatusOK, payments.AuthorizationResponse{
			PaymentID: req.PaymentID,
			Message:   "Settings unavailable: " + err.Error(),
			Status:    payments.StatusDenied,
		})
		return
	}

	resp := h.Payments.Authorize(ctx, settings, req, r.Header.Get("X-Request-Id"))
	writeJSON(w, http.StatusOK, resp)
}

func (h *PaymentsHandler) settle(w http.ResponseWriter, r *http.Request) {
	var req payments.SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.Payments.Settle(ctx, settings, req, r.Header.Get("X-Request-Id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PaymentsHandler) refund(w http.ResponseWriter, r *http.Request) {
	var req payments.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.Payments.Refund(ctx, settings, req, r.Header.Get("X-Request-Id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PaymentsHandler) cancel(w http.ResponseWriter, r *http.Request) {
	var req payments.CancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.Payments.Cancel(ctx, settings, req, r.Header.Get("X-Request-Id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type inboundResponseData struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	StatusCode  int    `json:"statusCode"`
}

type inboundResponse struct {
	PaymentID    string              `json:"paymentId"`
	RequestID    string              `json:"requestId"`
	ResponseData inboundResponseData `json:"responseData"`
}

// inbound echoes the received payload back as an opaque acknowledgment.
// The Platform's inbound-request feature is not used by this connector.
func (h *PaymentsHandler) inbound(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	paymentID, _ := body["paymentId"].(string)
	requestID, _ := body["requestId"].(string)
	delete(body, "paymentId")
	delete(body, "requestId")
	content, _ := json.Marshal(body)

	writeJSON(w, http.StatusOK, inboundResponse{
		PaymentID: paymentID,
		RequestID: requestID,
		ResponseData: inboundResponseData{
			Content:     string(content),
			ContentType: "application/json",
			StatusCode:  http.StatusOK,
		},
	})
}
