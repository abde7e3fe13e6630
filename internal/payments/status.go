package payments

import "strings"

// Platform payment statuses. "undefined" is the Platform's literal wire
// value for a not-yet-determined authorization.
const (
	StatusApproved  = "approved"
	StatusDenied    = "denied"
	StatusUndefined = "undefined"
)

// StatusForOrderState maps a Processor order state onto the Platform's
// three-valued payment status. Both the idempotent-lookup branch and the
// freshly-created-order branch use this single table.
func StatusForOrderState(state string) string {
	switch strings.ToLower(state) {
	case "accepted":
		return StatusApproved
	case "failed", "blocked":
		return StatusDenied
	default:
		return StatusUndefined
	}
}

// MethodCapability classifies a payment-method identifier.
type MethodCapability int

const (
	// CapabilityUnsupported denies the method outright.
	CapabilityUnsupported MethodCapability = iota
	// CapabilitySupported proceeds through the full authorization flow.
	CapabilitySupported
	// CapabilityUnimplemented marks methods the connector recognizes but
	// does not process yet (tokenized card brands).
	CapabilityUnimplemented
)

// MethodDigitalRiver is the only identifier that authorizes today.
const MethodDigitalRiver = "DigitalRiver"

var methodCapabilities = map[string]MethodCapability{
	MethodDigitalRiver: CapabilitySupported,
	"American Express": CapabilityUnimplemented,
	"Diners":           CapabilityUnimplemented,
	"Discover":         CapabilityUnimplemented,
	"JCB":              CapabilityUnimplemented,
	"Maestro":          CapabilityUnimplemented,
	"Mastercard":       CapabilityUnimplemented,
	"Visa":             CapabilityUnimplemented,
}

func CapabilityOf(method string) MethodCapability {
	return methodCapabilities[method]
}

// SupportedMethods lists the identifiers advertised to the Platform.
func SupportedMethods() []string {
	return []string{MethodDigitalRiver}
}
