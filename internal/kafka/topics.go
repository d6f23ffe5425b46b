package kafka

// Topics carrying order lifecycle events consumed by downstream services
// (notifications, analytics).
const (
	TopicOrderCreated   = "flight.orders.created"
	TopicOrderCancelled = "flight.orders.cancelled"
)
