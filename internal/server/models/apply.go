package models

import "time"

// ApplyStatus is the review state of an application. New applications start
// as PENDING; recruiters may move them to SEEN, ACCEPTED or REFUSED.
type ApplyStatus string

const (
	ApplyPending  ApplyStatus = "PENDING"
	ApplySeen     ApplyStatus = "SEEN"
	ApplyAccepted ApplyStatus = "ACCEPTED"
	ApplyRefused  ApplyStatus = "REFUSED"
)

// ParseApplyStatus validates a client-supplied status update. Only the
// recruiter-settable states are accepted.
func ParseApplyStatus(s string) (ApplyStatus, bool) {
	switch ApplyStatus(s) {
	case ApplySeen, ApplyAccepted, ApplyRefused:
		return ApplyStatus(s), true
	default:
		return "", false
	}
}

// ApplyType distinguishes how the application reached the platform.
type ApplyType string

const (
	ApplyInternal ApplyType = "INTERNAL"
	ApplyExternal ApplyType = "EXTERNAL"
)

// Apply is a job seeker's application to an offer. ResumeKey, when set,
// points at the uploaded resume object in the attachment store.
type Apply struct {
	ID          string
	OfferID     string
	JobSeekerID string
	Status      ApplyStatus
	Type        ApplyType
	ResumeKey   string
	CreatedAt   time.Time
}
