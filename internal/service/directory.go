package service

import (
	"context"
	"net/url"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// UserService manages dashboard accounts through the gateway. Route-level
// authorization restricts it to super admins; the service itself stays
// policy-free.
type UserService struct {
	resource[model.User, model.CreateUserRequest, model.UpdateUserRequest]
}

// NewUserService constructs a UserService.
func NewUserService(gw ports.Gateway) *UserService {
	return &UserService{
		resource: newResource[model.User, model.CreateUserRequest, model.UpdateUserRequest](gw, "/users"),
	}
}

// ContactService handles public contact submissions and their dashboard
// listing. Contacts have no update path upstream.
type ContactService struct {
	gw   ports.Gateway
	base string
}

// NewContactService constructs a ContactService.
func NewContactService(gw ports.Gateway) *ContactService {
	return &ContactService{gw: gw, base: "/contacts"}
}

// Submit records a public contact inquiry.
func (s *ContactService) Submit(ctx context.Context, req model.CreateContactRequest) (model.Contact, error) {
	var out model.Contact
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}
	if err := s.gw.Post(ctx, s.base, req, &out); err != nil {
		return out, err
	}
	return out, nil
}

// List returns all submitted inquiries.
func (s *ContactService) List(ctx context.Context, query url.Values) ([]model.Contact, error) {
	var out []model.Contact
	if err := s.gw.Get(ctx, s.base, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single inquiry.
func (s *ContactService) GetByID(ctx context.Context, id string) (model.Contact, error) {
	var out model.Contact
	if id == "" {
		return out, apperrors.Validation("id is required")
	}
	if err := s.gw.Get(ctx, s.base+"/"+url.PathEscape(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (s *ContactService) count(ctx context.Context) (int, error) {
	items, err := s.List(ctx, nil)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Delete removes an inquiry.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("id is required")
	}
	return s.gw.Delete(ctx, s.base+"/"+url.PathEscape(id))
}

// JobService exposes the public job board: open positions and applications.
type JobService struct {
	gw ports.Gateway
}

// NewJobService constructs a JobService.
func NewJobService(gw ports.Gateway) *JobService {
	return &JobService{gw: gw}
}

// List returns the open positions.
func (s *JobService) List(ctx context.Context, query url.Values) ([]model.Job, error) {
	var out []model.Job
	if err := s.gw.Get(ctx, "/jobs", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns a single posting.
func (s *JobService) GetByID(ctx context.Context, id string) (model.Job, error) {
	var out model.Job
	if id == "" {
		return out, apperrors.Validation("id is required")
	}
	if err := s.gw.Get(ctx, "/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Apply submits a candidate application, with the passport scan attached
// when one was provided.
func (s *JobService) Apply(ctx context.Context, req model.JobApplication, passportScan *ports.FilePart) error {
	if err := model.Validate(req); err != nil {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}

	if passportScan == nil {
		return s.gw.Post(ctx, "/jobs/"+url.PathEscape(req.JobID)+"/applications", req, nil)
	}

	form := ports.MultipartForm{
		Fields: map[string]string{
			"name":  req.Name,
			"email": req.Email,
			"phone": req.Phone,
		},
		Files: []ports.FilePart{*passportScan},
	}
	if req.Passport != "" {
		form.Fields["passport"] = req.Passport
	}
	return s.gw.Upload(ctx, "/jobs/"+url.PathEscape(req.JobID)+"/applications", form, nil)
}
