// Package events fans domain changes out to live subscribers.
package events

import (
	"fmt"
	"time"
)

const (
	TypeInventory = "inventory_update"
	TypeParty     = "party_update"
	TypeOrder     = "order_update"
	TypeUser      = "user_update"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Actor is the user who caused an event.
type Actor struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type Event struct {
	Type    string    `json:"type"`
	Action  string    `json:"action"`
	Entity  string    `json:"entity"`
	ID      uint      `json:"id"`
	Name    string    `json:"name,omitempty"`
	Actor   *Actor    `json:"user,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// New builds an event and its human readable message.
func New(typ, entity, action string, id uint, name string, actor *Actor) Event {
	who := "system"
	if actor != nil {
		who = actor.Email
	}
	label := name
	if label == "" {
		label = fmt.Sprintf("#%d", id)
	}
	return Event{
		Type:    typ,
		Action:  action,
		Entity:  entity,
		ID:      id,
		Name:    name,
		Actor:   actor,
		Message: fmt.Sprintf("%s %s %s '%s'", who, action, entity, label),
		At:      time.Now().UTC(),
	}
}

// RoutingKey is the broker topic for the event, entity.action.
func (e Event) RoutingKey() string {
	return e.Entity + "." + e.Action
}

// Publisher delivers events without blocking the caller; failures are logged.
type Publisher interface {
	Publish(e Event)
}

type multi []Publisher

// Multi publishes every event to each of the given publishers.
func Multi(publishers ...Publisher) Publisher {
	var out multi
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multi) Publish(e Event) {
	for _, p := range m {
		p.Publish(e)
	}
}

type nop struct{}

// Nop discards events.
func Nop() Publisher { return nop{} }

func (nop) Publish(Event) {}
