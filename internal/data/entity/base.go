package entity

import (
	"time"
)

type Base struct {
	ID        string
	CreatedAt time.Time
}

// Reference is a record the user service only resolves by id; its remaining
// fields are carried through untouched.
type Reference struct {
	ID         string
	Attributes map[string]any
}
