package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a list query, see ByColumn.
type Scope = func(*gorm.DB) *gorm.DB

// ByColumn filters on column = value.
func ByColumn(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

// Store is the CRUD surface shared by every table keyed by a numeric id.
type Store[T any] interface {
	Create(entity *T) error
	Save(entity *T) error
	FindByID(id uint) (*T, error)
	// FindByIDForUpdate locks the row when the dialect supports it.
	FindByIDForUpdate(id uint) (*T, error)
	FindAll(scopes ...Scope) ([]T, error)
	Delete(id uint) error
}

// Named is a Store whose rows carry a unique display name.
type Named[T any] interface {
	Store[T]
	FindByName(name string) (*T, error)
}

type store[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewStore returns a Store that preloads the given associations on every read.
func NewStore[T any](db *gorm.DB, preloads ...string) Store[T] {
	return &store[T]{db: db, preloads: preloads}
}

func (r *store[T]) query() *gorm.DB {
	q := r.db
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create and Save write the row only; associations are persisted by their own stores.
func (r *store[T]) Create(entity *T) error {
	return r.db.Omit(clause.Associations).Create(entity).Error
}

func (r *store[T]) Save(entity *T) error {
	return r.db.Omit(clause.Associations).Save(entity).Error
}

func (r *store[T]) FindByID(id uint) (*T, error) {
	var entity T
	if err := r.query().First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *store[T]) FindByIDForUpdate(id uint) (*T, error) {
	var entity T
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entity, id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindAll lists rows newest first.
func (r *store[T]) FindAll(scopes ...Scope) ([]T, error) {
	entities := []T{}
	err := r.query().Scopes(scopes...).Order("created_at DESC").Order("id DESC").Find(&entities).Error
	return entities, err
}

// Delete reports gorm.ErrRecordNotFound when no row matched.
func (r *store[T]) Delete(id uint) error {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type namedStore[T any] struct {
	*store[T]
}

func NewNamedStore[T any](db *gorm.DB, preloads ...string) Named[T] {
	return &namedStore[T]{&store[T]{db: db, preloads: preloads}}
}

func (r *namedStore[T]) FindByName(name string) (*T, error) {
	var entity T
	if err := r.query().Where("name = ?", name).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}
