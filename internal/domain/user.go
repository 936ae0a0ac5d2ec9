package domain

import "time"

// User represents a registered account.
// Password handling and token issuance live outside this service.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Profile holds a user's cooking preferences
type Profile struct {
	UserID           string   `json:"userId"`
	Preferences      []string `json:"preferences,omitempty"`
	TimeAvailable    string   `json:"timeAvailable,omitempty"`
	CookingSkill     string   `json:"cookingSkill,omitempty"`
	PeopleServed     string   `json:"peopleServed,omitempty"`
	CookingFrequency string   `json:"cookingFrequency,omitempty"`
}
