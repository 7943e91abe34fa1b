package services

// Shopping list event types.
const (
	EventListCreated = "shopping_list.created"
	EventListDeleted = "shopping_list.deleted"
	EventListUpdated = "shopping_list.updated"
	EventItemAdded   = "shopping_list.item_added"
	EventItemRemoved = "shopping_list.item_removed"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// ListEvent is the payload of every shopping list event.
type ListEvent struct {
	List    string `json:"list"`
	Item    string `json:"item,omitempty"`
	Privacy string `json:"privacy,omitempty"`
	Owner   string `json:"owner,omitempty"`
}
