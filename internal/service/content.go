package service

import (
	"context"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// BlogService manages blog articles through the gateway.
type BlogService struct {
	resource[model.Blog, model.CreateBlogRequest, model.UpdateBlogRequest]
	gw ports.Gateway
}

// NewBlogService constructs a BlogService.
func NewBlogService(gw ports.Gateway) *BlogService {
	return &BlogService{
		resource: newResource[model.Blog, model.CreateBlogRequest, model.UpdateBlogRequest](gw, "/blogs"),
		gw:       gw,
	}
}

// CreateWithImage creates a blog post with its cover image as one multipart
// request.
func (s *BlogService) CreateWithImage(ctx context.Context, req model.CreateBlogRequest, image *ports.FilePart) (model.Blog, error) {
	var out model.Blog
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}
	if image == nil {
		return s.Create(ctx, req)
	}

	form := ports.MultipartForm{
		Fields: map[string]string{
			"title":   req.Title,
			"content": req.Content,
			"author":  req.Author,
		},
		Files: []ports.FilePart{*image},
	}
	if err := s.gw.Upload(ctx, "/blogs", form, &out); err != nil {
		return out, err
	}
	return out, nil
}

// FAQService manages FAQ entries through the gateway.
type FAQService struct {
	resource[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]
}

// NewFAQService constructs a FAQService.
func NewFAQService(gw ports.Gateway) *FAQService {
	return &FAQService{
		resource: newResource[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest](gw, "/faqs"),
	}
}

// ResourceService manages the downloadable resource library through the
// gateway.
type ResourceService struct {
	resource[model.Resource, model.CreateResourceRequest, model.UpdateResourceRequest]
	gw ports.Gateway
}

// NewResourceService constructs a ResourceService.
func NewResourceService(gw ports.Gateway) *ResourceService {
	return &ResourceService{
		resource: newResource[model.Resource, model.CreateResourceRequest, model.UpdateResourceRequest](gw, "/resources"),
		gw:       gw,
	}
}

// CreateWithFile creates a resource entry and uploads its document in one
// multipart request.
func (s *ResourceService) CreateWithFile(ctx context.Context, req model.CreateResourceRequest, file ports.FilePart) (model.Resource, error) {
	var out model.Resource
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}

	form := ports.MultipartForm{
		Fields: map[string]string{
			"title":    req.Title,
			"category": req.Category,
		},
		Files: []ports.FilePart{file},
	}
	if err := s.gw.Upload(ctx, "/resources", form, &out); err != nil {
		return out, err
	}
	return out, nil
}
