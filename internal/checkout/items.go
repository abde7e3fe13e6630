package checkout

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-payment-connector.git/internal/dr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

// MinorToMajor converts a minor-unit amount (cents) to a major-unit decimal.
func MinorToMajor(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// discountTag reports whether a price tag is a discount the Processor should
// see. Shipping discounts are carried in the shipping total, not per item.
func discountTag(name string) bool {
	n := strings.ToUpper(name)
	return strings.Contains(n, "DISCOUNT@") && !strings.Contains(n, "DISCOUNT@SHIPPING")
}

// TranslateOrderFormItem converts an order-form line item into the
// Processor's item schema. A percentual discount tag wins over accumulated
// amount tags; when several percent tags exist the last one seen applies.
func TranslateOrderFormItem(item platform.OrderFormItem) dr.CheckoutItem {
	var discountPrice, discountPercent float64

	for _, tag := range item.PriceTags {
		if !discountTag(tag.Name) {
			continue
		}
		if tag.IsPercentual {
			discountPercent = math.Abs(tag.Value)
		} else {
			discountPrice += math.Abs(tag.Value)
		}
	}

	out := dr.CheckoutItem{
		SkuID:    item.ID,
		Quantity: item.Quantity,
		Price:    MinorToMajor(item.Price),
	}

	switch {
	case discountPercent > 0:
		out.Discount = &dr.Discount{PercentOff: discountPercent, Quantity: item.Quantity}
	case discountPrice > 0 && item.Quantity > 0:
		amountOff, _ := decimal.NewFromFloat(discountPrice).
			Div(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(item.Quantity))).
			Float64()
		out.Discount = &dr.Discount{AmountOff: amountOff, Quantity: item.Quantity}
	}

	return out
}
