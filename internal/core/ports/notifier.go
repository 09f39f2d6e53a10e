package ports

// EntityType names the kind of aggregate a change notification refers to.
type EntityType string

const (
	// EntityOrder marks notifications about order aggregates.
	EntityOrder EntityType = "order"

	// EntityTask marks notifications about delivery task aggregates.
	EntityTask EntityType = "delivery_task"
)

// Change describes one state mutation of an aggregate.
type Change struct {
	EntityType EntityType
	EntityID   string

	// NewState is the aggregate's status after the mutation, as its
	// Status.String() rendering.
	NewState string
}

// ChangePublisher is the outbound port command handlers use to announce
// committed state changes. Publishing never blocks the caller and never
// fails: delivery to subscribers is best effort.
type ChangePublisher interface {
	Publish(change Change)
}
