package sketch

import (
	"fmt"

	"github.com/google/uuid"
)

// ChangeKind identifies what changed on the canvas.
type ChangeKind int

const (
	// ChangeStrokeCompleted fires when a stroke is sealed.
	ChangeStrokeCompleted ChangeKind = iota
	// ChangeCleared fires when the canvas is cleared.
	ChangeCleared
)

// String returns a short name for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeStrokeCompleted:
		return "stroke-completed"
	case ChangeCleared:
		return "cleared"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is delivered to listeners registered with Engine.OnChange.
// Hosts typically use it to enable an "analyze" action.
type Change struct {
	Kind ChangeKind
	// Strokes is the number of strokes on the canvas after the change.
	Strokes int
	// Stroke is the ID of the completed stroke, uuid.Nil for ChangeCleared.
	Stroke uuid.UUID
}

type subscription struct {
	id int
	fn func(Change)
}

// notifier fans change events out to listeners in registration order.
type notifier struct {
	nextID int
	subs   []subscription
}

// add registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (n *notifier) add(fn func(Change)) func() {
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// emit calls every listener registered at the time of the call.
func (n *notifier) emit(c Change) {
	subs := n.subs
	for _, s := range subs {
		s.fn(c)
	}
}
