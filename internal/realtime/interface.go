package realtime

import "context"

// Event names pushed to subscribers.
const (
	EventNewMention    = "new-mention"
	EventTopicsUpdated = "topics-updated"
	EventNewAlert      = "new-alert"
)

// Publisher pushes brand-scoped events to the realtime channel.
// Delivery is fire-and-forget, at most once per call: a publish failure is
// logged and swallowed so it can never affect pipeline correctness.
type Publisher interface {
	Publish(ctx context.Context, brandID, event string, payload any)
}
