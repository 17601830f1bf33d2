package model

// FAQ is a question/answer pair shown on the public site.
type FAQ struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
}

type UpdateFAQRequest struct {
	Question string `json:"question,omitempty" validate:"omitempty,max=500"`
	Answer   string `json:"answer,omitempty"`
}
