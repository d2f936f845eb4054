package domain

import "time"

// Teller is a cashier who can hold at most one open shift at a time.
// TillCode identifies the physical cash drawer assigned to them.
type Teller struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	TillCode  string    `json:"tillCode"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Branch    string    `json:"branch"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Teller) Clone() *Teller {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}
