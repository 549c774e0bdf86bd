package service

import (
	"strconv"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
)

// Caller is the authenticated user a request acts on behalf of. A nil
// *Caller means an anonymous request.
type Caller struct {
	UserID uint
	Email  string
	Role   model.Role
}

// actor is the value written to the audit columns.
func (c *Caller) actor() string {
	if c == nil {
		return "system"
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

func (c *Caller) eventActor() *events.Actor {
	if c == nil {
		return nil
	}
	return &events.Actor{ID: c.UserID, Email: c.Email}
}
