// Package base holds the identity and lifecycle bookkeeping shared by every
// domain entity: UUIDv7 identity, created/updated timestamps, and soft delete.
package base

import (
	"time"

	"github.com/google/uuid"
)

type Meta struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func NewMeta() Meta {
	now := time.Now().UTC()
	return Meta{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch stamps the update timestamp. Every mutating entity method calls it.
func (m *Meta) Touch() {
	m.UpdatedAt = time.Now().UTC()
}

// Delete marks the record inactive without removing it. Deleted records stay
// resolvable by id so historical references (e.g. a shift's employee) keep
// working.
func (m *Meta) Delete() {
	now := time.Now().UTC()
	m.DeletedAt = &now
	m.UpdatedAt = now
}

func (m *Meta) IsDeleted() bool {
	return m.DeletedAt != nil
}

// Validatable is satisfied by every entity. Constructors and mutating methods
// run Validate before any state reaches the persistence layer.
type Validatable interface {
	Validate() error
}
