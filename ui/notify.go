package ui

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
)

type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Notification is a transient, dismissible user-facing message.
type Notification struct {
	ID      string
	Level   Level
	Message string
}

// Notifier receives every user-visible outcome. No failure is silently
// swallowed and none is fatal to the page.
type Notifier interface {
	Notify(level Level, msg string)
}

// MemoryNotifier collects notifications; used by the console and tests.
type MemoryNotifier struct {
	mu    sync.Mutex
	items []Notification
}

func NewMemoryNotifier() *MemoryNotifier { return &MemoryNotifier{} }

func (n *MemoryNotifier) Notify(level Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notification{ID: uuid.NewString(), Level: level, Message: msg})
}

func (n *MemoryNotifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

func (n *MemoryNotifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}

func (n *MemoryNotifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = nil
}

// notifyFailure surfaces a failed mutation: one notification per field
// message when the backend reported field errors, otherwise the message.
func notifyFailure(n Notifier, msg string, errs client.FieldErrors) {
	flat := errs.Flatten()
	if len(flat) == 0 {
		n.Notify(LevelError, msg)
		return
	}
	for _, m := range flat {
		n.Notify(LevelError, m)
	}
}
