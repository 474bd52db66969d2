package notifier

// Event names broadcast to live-update subscribers. One event per mutation,
// named <entity>:<operation>.
const (
	EventCategoryCreated = "category:created"
	EventCategoryUpdated = "category:updated"
	EventCategoryDeleted = "category:deleted"

	EventProductCreated = "product:created"
	EventProductUpdated = "product:updated"
	EventProductDeleted = "product:deleted"

	EventOrderCreated = "order:created"
	EventOrderUpdated = "order:updated"

	EventSettingsUpdated = "settings:updated"
)

// Message is the wire envelope delivered to every subscriber.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
