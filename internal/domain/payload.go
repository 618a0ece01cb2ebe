package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Payload is the complete document text written by an emission.
// It is opaque: nothing inspects or parses its structure.
type Payload struct {
	text string
}

// NewPayload wraps text as a Payload.
func NewPayload(text string) Payload {
	return Payload{text: text}
}

// String returns the payload text.
func (p Payload) String() string {
	return p.text
}

// Len returns the payload size in bytes.
func (p Payload) Len() int64 {
	return int64(len(p.text))
}

// Digest returns the hex-encoded SHA-256 of the payload.
func (p Payload) Digest() string {
	sum := sha256.Sum256([]byte(p.text))
	return hex.EncodeToString(sum[:])
}
