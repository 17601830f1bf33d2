package model

import "time"

// Resource is a downloadable document (brochure, certificate, form) listed
// in the dashboard's resource library.
type Resource struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"fileUrl"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateResourceRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"required,max=100"`
}

type UpdateResourceRequest struct {
	Title    string `json:"title,omitempty" validate:"omitempty,max=200"`
	Category string `json:"category,omitempty" validate:"omitempty,max=100"`
}
