package models

// Review is seeded data; there is no write endpoint.
type Review struct {
	Base
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
