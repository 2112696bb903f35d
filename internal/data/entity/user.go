package entity

type User struct {
	Base
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	// Attributes holds profile fields without a dedicated column.
	Attributes map[string]any
}

// UserProfile is a user together with their upcoming tickets.
type UserProfile struct {
	User
	Tickets []Ticket
}
