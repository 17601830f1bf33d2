package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// resource is the shared CRUD core for entity services. T is the entity as
// the upstream API returns it, C and U the tagged create/update schemas.
// Every write validates its schema before touching the network; a request
// with field errors never reaches the gateway.
type resource[T any, C any, U any] struct {
	gw   ports.Gateway
	base string
}

func newResource[T any, C any, U any](gw ports.Gateway, base string) resource[T, C, U] {
	return resource[T, C, U]{gw: gw, base: base}
}

func (r resource[T, C, U]) itemPath(id string) string {
	return r.base + "/" + url.PathEscape(id)
}

func (r resource[T, C, U]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := r.gw.Get(ctx, r.base, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[T, C, U]) GetByID(ctx context.Context, id string) (T, error) {
	var out T
	if id == "" {
		return out, apperrors.Validation("id is required")
	}
	if err := r.gw.Get(ctx, r.itemPath(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r resource[T, C, U]) Create(ctx context.Context, req C) (T, error) {
	var out T
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}
	if err := r.gw.Post(ctx, r.base, req, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r resource[T, C, U]) Update(ctx context.Context, id string, req U) (T, error) {
	var out T
	if id == "" {
		return out, apperrors.Validation("id is required")
	}
	if err := model.Validate(req); err != nil {
		return out, &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "invalid input",
			Cause:   err,
		}
	}
	if err := r.gw.Put(ctx, r.itemPath(id), req, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r resource[T, C, U]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("id is required")
	}
	return r.gw.Delete(ctx, r.itemPath(id))
}

// count fetches the full list and reports its length. The upstream API has
// no count endpoint.
func (r resource[T, C, U]) count(ctx context.Context) (int, error) {
	items, err := r.List(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.base, err)
	}
	return len(items), nil
}
