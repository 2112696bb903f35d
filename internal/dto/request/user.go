package request

import (
	"encoding/json"
	"strings"
)

// CreateUserRequest accepts any JSON object. Fields other than the ones
// declared here end up in Attributes. encoding/json matches the declared
// fields case-insensitively, so every casing of them is kept out of
// Attributes.
type CreateUserRequest struct {
	Name       string         `json:"name"`
	Email      string         `json:"email" validate:"required,email"`
	Password   string         `json:"password" validate:"required,max=72"`
	Phone      string         `json:"phone"`
	Attributes map[string]any `json:"-"`
}

func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type known CreateUserRequest
	var k known
	if err := json.Unmarshal(data, &k); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range all {
		if isDeclaredField(key) {
			delete(all, key)
		}
	}

	*r = CreateUserRequest(k)
	if len(all) > 0 {
		r.Attributes = all
	}
	return nil
}

func isDeclaredField(key string) bool {
	for _, field := range []string{"name", "email", "password", "phone"} {
		if strings.EqualFold(key, field) {
			return true
		}
	}
	return false
}
