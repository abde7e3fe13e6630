package payments

const (
	TopicPaymentDecision = "payments.decision"
)

// Partition key = paymentId so every event for one payment keeps its order.
func PartitionKey(paymentID string) []byte { return []byte(paymentID) }
