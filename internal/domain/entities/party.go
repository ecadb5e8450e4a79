package entities

import "time"

// Customer is resolved (or created) by email when a service request is submitted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email (lower-cased)
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Freelancer is read-only reference data for this engine.
type Freelancer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}
