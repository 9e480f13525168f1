package models

import "time"

// Pack is a purchasable bundle of recruiting/job-seeking perks.
type Pack struct {
	ID    string
	Title string
	Price float64
}

// Subscription links a job seeker to a pack.
type Subscription struct {
	ID          string
	JobSeekerID string
	PackID      string
	CreatedAt   time.Time
}
