package model

import "time"

// Blog is a published article on the public site, managed from the dashboard.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required,max=100"`
}

type UpdateBlogRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,max=300"`
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty" validate:"omitempty,max=100"`
}
