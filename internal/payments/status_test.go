package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForOrderState(t *testing.T) {
	cases := map[string]string{
		"accepted":        StatusApproved,
		"failed":          StatusDenied,
		"blocked":         StatusDenied,
		"payment_pending": StatusUndefined,
		"in_review":       StatusUndefined,
		"fulfilled":       StatusUndefined,
		"":                StatusUndefined,
		"ACCEPTED":        StatusApproved,
	}
	for state, want := range cases {
		assert.Equal(t, want, StatusForOrderState(state), "state %q", state)
	}
}

func TestCapabilityOf(t *testing.T) {
	assert.Equal(t, CapabilitySupported, CapabilityOf(MethodDigitalRiver))
	assert.Equal(t, CapabilityUnimplemented, CapabilityOf("Visa"))
	assert.Equal(t, CapabilityUnimplemented, CapabilityOf("Mastercard"))
	assert.Equal(t, CapabilityUnsupported, CapabilityOf("Boleto"))
}

func TestSupportedMethods(t *testing.T) {
	assert.Equal(t, []string{MethodDigitalRiver}, SupportedMethods())
}
