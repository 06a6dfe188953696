package domain

import "time"

// User is the account record as the mock backend stores and returns it.
// The password travels in clear text: this layer simulates a demo backend
// and never talks to a real network.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JoinDate  time.Time `json:"joinDate"`
}
