package models

import "time"

// Application records that a user applied to a job. The pair (username,
// job_id) is unique in the store.
type Application struct {
	Username  string    `json:"username" db:"username"`
	JobID     int64     `json:"jobId" db:"job_id"`
	State     string    `json:"state" db:"state"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Application states. New applications start as applied.
const (
	StateApplied  = "applied"
	StateAccepted = "accepted"
	StateRejected = "rejected"
)
