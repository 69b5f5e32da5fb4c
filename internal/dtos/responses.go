package dtos

import "time"

// JobSummary is the public projection of one published posting. It is built
// inside the cached listing query, so draft/archived postings and postings
// of unvalidated companies can never enter the cache.
type JobSummary struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	SalaryMin      int        `json:"salary_min"`
	SalaryCurrency string     `json:"salary_currency"`
	SalaryPeriod   string     `json:"salary_period"`
	Type           string     `json:"type"`
	EmploymentType string     `json:"employment_type"`
	Location       string     `json:"location"`
	CompanyName    string     `json:"company_name"`
	Website        string     `json:"website"`
	CreatedAt      time.Time  `json:"created_at"`
	PublishedAt    *time.Time `json:"published_at"`
}

// JobWithApplicantCount decorates a company's own posting with how many
// applications it has received.
type JobWithApplicantCount struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Type             string     `json:"type"`
	Location         string     `json:"location"`
	EmploymentType   string     `json:"employment_type"`
	Status           string     `json:"status"`
	PublishedAt      *time.Time `json:"published_at"`
	CreatedAt        time.Time  `json:"created_at"`
	ApplicationCount int64      `json:"application_count"`
}
