package entities

import "time"

type Customer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastContactedAt *time.Time `json:"lastContactedAt,omitempty"`
}

func (c Customer) Clone() Customer {
	out := c
	out.Tags = cloneStrings(c.Tags)
	out.LastContactedAt = cloneTime(c.LastContactedAt)
	return out
}
