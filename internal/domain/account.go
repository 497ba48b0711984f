package domain

import "time"

// Account is a registered credential holder. OwnerID is the random
// external token that ties leads to this account; the numeric ID stays
// internal to the store.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	OwnerID      string    `json:"ownerid"`
	Timeline     string    `json:"timeline,omitempty"`
	UpdatedAt    time.Time `json:"updatedat"`
}
