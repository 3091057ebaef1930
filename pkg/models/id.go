package models

import "github.com/google/uuid"

// EntityID identifies a section or lecture across the optimistic-create
// window. A freshly created entity carries only a client-generated temporary
// id until the server confirms it with a durable id. The temporary id is
// retained after confirmation so in-flight reconciliation can still match on
// it.
type EntityID struct {
	temp    string
	durable string
}

// NewTempID returns a pending id for an entity created locally but not yet
// confirmed by the server.
func NewTempID() EntityID {
	return EntityID{temp: uuid.NewString()}
}

// PersistedID returns an id for an entity the server already knows about.
func PersistedID(id string) EntityID {
	return EntityID{durable: id}
}

func wireID(temp, durable string) EntityID {
	return EntityID{temp: temp, durable: durable}
}

// Pending reports whether the entity has not been confirmed by the server.
func (id EntityID) Pending() bool {
	return id.durable == ""
}

// Key returns the durable id when assigned, otherwise the temporary id. It
// is the lookup key for everything in the tree.
func (id EntityID) Key() string {
	if id.durable != "" {
		return id.durable
	}
	return id.temp
}

// TempID returns the client-generated id, empty for server-loaded entities.
func (id EntityID) TempID() string {
	return id.temp
}

// DurableID returns the server-assigned id, empty while pending.
func (id EntityID) DurableID() string {
	return id.durable
}

// Persist returns a copy with the server-assigned id applied. The temporary
// id is kept for matching.
func (id EntityID) Persist(durable string) EntityID {
	return EntityID{temp: id.temp, durable: durable}
}

// Matches reports whether two ids refer to the same entity: equal durable
// ids, or a shared temporary id for entities still being reconciled.
func (id EntityID) Matches(other EntityID) bool {
	if id.durable != "" && id.durable == other.durable {
		return true
	}
	return id.temp != "" && id.temp == other.temp
}

// IsZero reports whether the id carries no identity at all.
func (id EntityID) IsZero() bool {
	return id.temp == "" && id.durable == ""
}
