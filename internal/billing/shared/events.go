package shared

import "context"

// Operation names a mutation on a resource.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ChangeNotifier is told about every committed mutation. Implementations must
// not block; they run on the request goroutine.
type ChangeNotifier interface {
	Changed(ctx context.Context, resource string, op Operation)
}

// Notifiers fans a change out to several notifiers.
type Notifiers []ChangeNotifier

// Changed implements ChangeNotifier.
func (n Notifiers) Changed(ctx context.Context, resource string, op Operation) {
	for _, notifier := range n {
		if notifier != nil {
			notifier.Changed(ctx, resource, op)
		}
	}
}

// Notify is a nil-safe helper for services holding an optional notifier.
func Notify(ctx context.Context, n ChangeNotifier, resource string, op Operation) {
	if n != nil {
		n.Changed(ctx, resource, op)
	}
}
