package models

import "time"

// OfferStatus tracks whether an offer still accepts applications.
type OfferStatus string

const (
	OfferOpen   OfferStatus = "OPEN"
	OfferClosed OfferStatus = "CLOSED"
)

// Offer is a job posting created by a recruiter.
type Offer struct {
	ID          string
	Title       string
	Description string
	Company     string
	Location    string
	Salary      float64
	RecruiterID string
	Status      OfferStatus
	CreatedAt   time.Time
}
