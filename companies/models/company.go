package models

// Company is the persisted company row. Handle uniqueness is enforced by the
// store, not by this layer.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	NumEmployees *int64  `json:"numEmployees" db:"num_employees"`
	Description  *string `json:"description" db:"description"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CreateCompanyRequest is the payload for creating a company.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int64  `json:"numEmployees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyDetail is a company together with its job postings.
type CompanyDetail struct {
	Company
	Jobs []JobSummary `json:"jobs"`
}

// JobSummary is the slice of a job shown inside a company detail response.
type JobSummary struct {
	ID     int64    `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *float64 `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}
