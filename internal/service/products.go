package service

import (
	"context"
	"strconv"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// ProductService manages the export product catalog through the gateway.
type ProductService struct {
	resource[model.Product, model.CreateProductRequest, model.UpdateProductRequest]
	gw ports.Gateway
}

// NewProductService constructs a ProductService.
func NewProductService(gw ports.Gateway) *ProductService {
	return &ProductService{
		resource: newResource[model.Product, model.CreateProductRequest, model.UpdateProductRequest](gw, "/products"),
		gw:       gw,
	}
}

// CreateWithImages creates a product together with its image files in one
// multipart request. Images upload at submit time only, in selection order.
func (s *ProductService) CreateWithImages(ctx context.Context, req model.CreateProductRequest, images []ports.FilePart) (model.Product, error) {
	var out model.Product
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}

	form := ports.MultipartForm{
		Fields: map[string]string{
			"name":        req.Name,
			"category":    req.Category,
			"description": req.Description,
		},
		Files: images,
	}
	if req.Origin != "" {
		form.Fields["origin"] = req.Origin
	}
	if len(images) > 0 {
		form.Fields["imageCount"] = strconv.Itoa(len(images))
	}

	if err := s.gw.Upload(ctx, "/products", form, &out); err != nil {
		return out, err
	}
	return out, nil
}
