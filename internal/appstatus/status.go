// Package appstatus defines the status state machines for applications and
// job postings.
//
// Application status graph:
//
//	submitted ──► viewed ──► shortlisted
//	                  │
//	                  └────► rejected
//
// shortlisted and rejected are terminal states.
package appstatus

import "fmt"

// Status mirrors the application status enum in the database.
type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusViewed      Status = "viewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusSubmitted: {StatusViewed},
	StatusViewed:    {StatusShortlisted, StatusRejected},
	// shortlisted and rejected are terminal — no outgoing transitions
}

// Parse converts a raw string to a Status, returning an error for unknown
// values.
func Parse(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusSubmitted, StatusViewed, StatusShortlisted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition returns true when moving from → to is permitted by the
// state machine.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal returns true when the status has no outgoing transitions.
func Terminal(s Status) bool {
	return len(validTransitions[s]) == 0
}

// IsDecision reports whether to is one of the two target values a company
// may set explicitly. The viewed transition happens as a side effect of the
// first read, never through the update endpoint.
func IsDecision(to Status) bool {
	return to == StatusShortlisted || to == StatusRejected
}

// Job posting statuses. Archived is present in the schema but reserved:
// no operation currently transitions a posting into it.
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusArchived  JobStatus = "archived"
)

// ParseJobStatus converts a raw string to a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobStatusDraft, JobStatusPublished, JobStatusArchived:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}
