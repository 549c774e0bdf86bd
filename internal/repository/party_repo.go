package repository

import "gorm.io/gorm"

// PartyRepository stores clients or suppliers; email is not unique, the
// oldest matching row wins.
type PartyRepository[T any] interface {
	Store[T]
	FindByEmail(email string) (*T, error)
}

type partyRepo[T any] struct {
	*store[T]
}

func NewPartyRepo[T any](db *gorm.DB) PartyRepository[T] {
	return &partyRepo[T]{&store[T]{db: db}}
}

func (r *partyRepo[T]) FindByEmail(email string) (*T, error) {
	var party T
	if err := r.db.Where("email = ?", email).Order("id").First(&party).Error; err != nil {
		return nil, err
	}
	return &party, nil
}
