package response

import (
	"time"

	"cinema-users/internal/data/entity"
)

type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse has no password field; it is the only user shape that leaves
// the service.
type UserResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ReferenceResponse struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type TicketResponse struct {
	ID         string              `json:"id"`
	ShowTime   time.Time           `json:"show_time"`
	Movie      []ReferenceResponse `json:"movie"`
	Cinema     []ReferenceResponse `json:"cinema"`
	Attributes map[string]any      `json:"attributes,omitempty"`
}

type ProfileResponse struct {
	UserResponse
	Tickets []TicketResponse `json:"tickets"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Attributes: user.Attributes,
		CreatedAt:  user.CreatedAt,
	}
}

func ProfileToResponse(profile *entity.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		UserResponse: UserToResponse(&profile.User),
		Tickets:      make([]TicketResponse, 0, len(profile.Tickets)),
	}

	for _, t := range profile.Tickets {
		ticket := TicketResponse{
			ID:         t.ID,
			ShowTime:   t.ShowTime,
			Movie:      make([]ReferenceResponse, 0, len(t.Movie)),
			Cinema:     make([]ReferenceResponse, 0, len(t.Cinema)),
			Attributes: t.Attributes,
		}
		for _, m := range t.Movie {
			ticket.Movie = append(ticket.Movie, ReferenceResponse{ID: m.ID, Attributes: m.Attributes})
		}
		for _, c := range t.Cinema {
			ticket.Cinema = append(ticket.Cinema, ReferenceResponse{ID: c.ID, Attributes: c.Attributes})
		}
		resp.Tickets = append(resp.Tickets, ticket)
	}

	return resp
}
