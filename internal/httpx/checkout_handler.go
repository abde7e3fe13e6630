package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/checkout"
	"github.com/ariefcatur/go-payment-connector.git/internal/country"
	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
	"github.com/ariefcatur/go-payment-connector.git/internal/tax"
)

// CheckoutGateway is the slice of the Digital River client the storefront
// checkout endpoints use.
type CheckoutGateway interface {
	CreateCheckout(ctx context.Context, token string, payload dr.CheckoutPayload) (*dr.CheckoutResponse, error)
	UpdateCheckoutWithSource(ctx context.Context, token, checkoutID, sourceID string) (*dr.CheckoutResponse, error)
}

// OrderFormReader reads order forms for checkout creation.
type OrderFormReader interface {
	GetOrderForm(ctx context.Context, orderFormID string, settings platform.Settings) (*platform.OrderForm, error)
}

// CheckoutHandler exposes the storefront checkout webhooks and the tax hub.
type CheckoutHandler struct {
	Settings SettingsLoader
	Platform OrderFormReader
	Gateway  CheckoutGateway
	Tax      *tax.Service
	AppID    string
	Log      *zap.Logger
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Post("/_v/checkout", h.createCheckout)
	r.Post("/_v/checkout/update", h.updateCheckout)
	r.Post("/_v/tax/order-tax", h.orderTax)
	r.Get("/_v/country/{code}", h.countryCode)
}

type createCheckoutRequest struct {
	OrderFormID string `json:"orderFormId"`
}

type updateCheckoutRequest struct {
	CheckoutID string `json:"checkoutId"`
	SourceID   string `json:"sourceId"`
}

func (h *CheckoutHandler) createCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}
	if settings.AppKey == "" || settings.AppToken == "" {
		writeError(w, &apperr.AuthenticationError{Reason: "Missing app key and token"})
		return
	}

	var req createCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderFormID == "" {
		writeError(w, &apperr.UserInputError{Reason: "No orderForm ID provided"})
		return
	}

	log := h.Log.With(zap.String("orderFormId", req.OrderFormID))
	log.Info("create checkout request received")

	form, err := h.Platform.GetOrderForm(ctx, req.OrderFormID, settings)
	if err != nil {
		log.Error("get order form failed", zap.Error(err))
		writeError(w, apperr.NewResolverError(err, "orderForm not found"))
		return
	}

	browserIP := strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	payload := checkout.BuildFromOrderForm(form, browserIP)

	resp, err := h.Gateway.CreateCheckout(ctx, settings.DigitalRiverToken, payload)
	if err != nil {
		log.Error("create checkout failed", zap.Error(err))
		writeError(w, apperr.NewResolverError(err, "Checkout creation failed"))
		return
	}
	log.Info("checkout created", zap.String("checkoutId", resp.ID))

	writeJSON(w, http.StatusOK, map[string]string{
		"checkoutId":       resp.ID,
		"paymentSessionId": resp.PaymentSessionID,
	})
}

// updateCheckout attaches a payment source to an existing checkout before
// it is promoted to an order.
func (h *CheckoutHandler) updateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CheckoutID == "" || req.SourceID == "" {
		writeError(w, &apperr.UserInputError{Reason: "Checkout ID and Source ID must be provided"})
		return
	}

	log := h.Log.With(zap.String("checkoutId", req.CheckoutID), zap.String("sourceId", req.SourceID))
	log.Info("update checkout request received")

	resp, err := h.Gateway.UpdateCheckoutWithSource(ctx, settings.DigitalRiverToken, req.CheckoutID, req.SourceID)
	if err != nil {
		log.Error("update checkout failed", zap.Error(err))
		writeError(w, apperr.NewResolverError(err, "Update Checkout failure"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updateCheckoutResponse": resp})
}

// The tax hub wraps its payload in a data envelope.
type orderTaxRequest struct {
	Data tax.Request `json:"data"`
}

func (h *CheckoutHandler) orderTax(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	settings, err := h.Settings.GetAppSettings(ctx, h.AppID)
	if err != nil {
		writeError(w, err)
		return
	}

	var req orderTaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &apperr.UserInputError{Reason: "invalid json"})
		return
	}

	resp, err := h.Tax.Quote(ctx, settings, r.Header.Get("Authorization"), req.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CheckoutHandler) countryCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if len(code) != 3 {
		writeError(w, &apperr.UserInputError{Reason: "3 digit country code must be provided"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": country.ToAlpha2(code)})
}
