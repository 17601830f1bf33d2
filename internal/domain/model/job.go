package model

import "time"

// Job is an open position listed on the public jobs page.
type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobApplication is the payload a candidate submits for a posting.
type JobApplication struct {
	JobID    string `json:"jobId" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=30"`
	Passport string `json:"passport" validate:"omitempty,max=50"`
}
