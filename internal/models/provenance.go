package models

// Provenance records where an entity's current value came from. Remote
// entities were read from the API; local-pending entities were written
// optimistically and have not been confirmed by the server; local-confirmed
// entities were written optimistically and later acknowledged.
type Provenance string

const (
	OriginRemote         Provenance = "remote"
	OriginLocalPending   Provenance = "local-pending"
	OriginLocalConfirmed Provenance = "local-confirmed"
)

// Supersedable reports whether an authoritative fetch may overwrite an
// entity with this provenance. Pending local writes survive refreshes until
// the server confirms them or returns a record with the same identity.
func (p Provenance) Supersedable() bool {
	return p != OriginLocalPending
}
