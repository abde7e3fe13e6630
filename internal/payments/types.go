package payments

// Request/response shapes of the Platform's payment-provider contract.

type AuthorizationRequest struct {
	PaymentID          string  `json:"paymentId"`
	Reference          string  `json:"reference"`
	OrderID            string  `json:"orderId"`
	PaymentMethod      string  `json:"paymentMethod"`
	MerchantName       string  `json:"merchantName,omitempty"`
	Value              float64 `json:"value"`
	Currency           string  `json:"currency"`
	URL                string  `json:"url,omitempty"`
	CallbackURL        string  `json:"callbackUrl,omitempty"`
	InboundRequestsURL string  `json:"inboundRequestsUrl,omitempty"`
	ReturnURL          string  `json:"returnUrl,omitempty"`
}

type AuthorizationResponse struct {
	PaymentID       string `json:"paymentId"`
	TID             string `json:"tid"`
	AuthorizationID string `json:"authorizationId"`
	Code            string `json:"code,omitempty"`
	Message         string `json:"message"`
	Status          string `json:"status"`
	Acquirer        string `json:"acquirer,omitempty"`
}

type SettlementRequest struct {
	PaymentID       string  `json:"paymentId"`
	RequestID       string  `json:"requestId"`
	TID             string  `json:"tid"`
	AuthorizationID string  `json:"authorizationId,omitempty"`
	Value           float64 `json:"value"`
}

type SettlementResponse struct {
	PaymentID string  `json:"paymentId"`
	RequestID string  `json:"requestId"`
	SettleID  string  `json:"settleId"`
	Code      string  `json:"code,omitempty"`
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
}

type RefundRequest struct {
	PaymentID       string  `json:"paymentId"`
	RequestID       string  `json:"requestId"`
	TID             string  `json:"tid"`
	AuthorizationID string  `json:"authorizationId,omitempty"`
	Value           float64 `json:"value"`
}

type RefundResponse struct {
	PaymentID string  `json:"paymentId"`
	RequestID string  `json:"requestId"`
	RefundID  string  `json:"refundId"`
	Code      string  `json:"code,omitempty"`
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
}

type CancellationRequest struct {
	PaymentID       string `json:"paymentId"`
	RequestID       string `json:"requestId"`
	TransactionID   string `json:"transactionId"`
	TID             string `json:"tid"`
	AuthorizationID string `json:"authorizationId,omitempty"`
}

type CancellationResponse struct {
	PaymentID      string `json:"paymentId"`
	RequestID      string `json:"requestId"`
	TransactionID  string `json:"transactionId"`
	CancellationID string `json:"cancellationId"`
	Code           string `json:"code,omitempty"`
	Message        string `json:"message"`
}

type PaymentMethodsResponse struct {
	PaymentMethods []string `json:"paymentMethods"`
}
