package domain

// Reservation binds one equipment item to one user. Records are immutable
// once created: there is no update operation, only create and delete. The
// embedded User and Equipment are snapshots taken at creation time, not live
// references.
type Reservation struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	User      User      `json:"user"`
	Equipment Equipment `json:"equipment"`
	Notes     string    `json:"notes"`
}
