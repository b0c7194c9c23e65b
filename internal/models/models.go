package models

import (
	"time"
)

// Model defines the base interface for all catalog entities.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	Sequence() int        // Sequence returns the 1-based creation position among models of the same kind
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last changed
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// entity holds the bookkeeping fields shared by every [Model].
type entity struct {
	id        string
	sequence  int
	createdAt time.Time
	updatedAt time.Time
}

func newEntity(sequence int) entity {
	now := time.Now()
	return entity{sequence: sequence, createdAt: now, updatedAt: now}
}

func (e *entity) ID() string           { return e.id }
func (e *entity) Sequence() int        { return e.sequence }
func (e *entity) CreatedAt() time.Time { return e.createdAt }
func (e *entity) UpdatedAt() time.Time { return e.updatedAt }

// SetID assigns the identifier. Repositories call it once at creation.
func (e *entity) SetID(id string) { e.id = id }

func (e *entity) touch() { e.updatedAt = time.Now() }
