package model

import "time"

// Product is an export catalog entry as the upstream API returns it.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Origin      string    `json:"origin"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Origin      string `json:"origin" validate:"max=100"`
}

type UpdateProductRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=200"`
	Category    string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty"`
	Origin      string `json:"origin,omitempty" validate:"omitempty,max=100"`
}
