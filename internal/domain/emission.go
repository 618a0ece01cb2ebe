package domain

import "time"

// Emission records one successful write of a payload to a destination.
type Emission struct {
	ID          string
	Destination string
	Bytes       int64
	SHA256      string
	EmittedAt   time.Time
}

// Matches reports whether the emission wrote exactly the given payload.
func (e *Emission) Matches(p Payload) bool {
	return e.Bytes == p.Len() && e.SHA256 == p.Digest()
}
