package models

import "time"

// Job is the persisted job row. Id generation and the company foreign key
// are enforced by the store.
type Job struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Salary        *float64  `json:"salary" db:"salary"`
	Equity        *float64  `json:"equity" db:"equity"`
	CompanyHandle string    `json:"companyHandle" db:"company_handle"`
	DatePosted    time.Time `json:"datePosted" db:"date_posted"`
}

// CreateJobRequest is the payload for creating a job.
type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *float64 `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}
