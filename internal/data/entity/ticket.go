package entity

import (
	"time"
)

// Ticket is a booking as it appears inside a profile: the owner is implied
// and the movie and cinema references are already resolved. Each slice holds
// zero or one element.
type Ticket struct {
	ID         string
	ShowTime   time.Time
	Movie      []Movie
	Cinema     []Cinema
	Attributes map[string]any
}
