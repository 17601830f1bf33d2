package service

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	mockgw "github.com/shshafin/work-agency-client-sub003/internal/mocks/gateway"
)

func TestOverviewToleratesPartialFailures(t *testing.T) {
	gw := &mockgw.MockGateway{
		GetFunc: func(_ context.Context, path string, _ url.Values, out any) error {
			switch path {
			case "/products":
				fillList(out, 3)
				return nil
			case "/blogs":
				return apperrors.Gateway("upstream down")
			case "/faqs":
				fillList(out, 1)
				return nil
			default:
				fillList(out, 0)
				return nil
			}
		},
	}

	svc := NewDashboardService(DashboardServiceOptions{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Products:  NewProductService(gw),
		Blogs:     NewBlogService(gw),
		FAQs:      NewFAQService(gw),
		Resources: NewResourceService(gw),
		Contacts:  NewContactService(gw),
		Users:     NewUserService(gw),
	})

	got := svc.Overview(context.Background())
	assert.Equal(t, map[string]int{
		"products":  3,
		"blogs":     0,
		"faqs":      1,
		"resources": 0,
		"contacts":  0,
		"users":     0,
	}, got)
}

// fillList writes n empty items into a decoded list target regardless of its
// element type.
func fillList(out any, n int) {
	switch v := out.(type) {
	case *[]model.Product:
		*v = make([]model.Product, n)
	case *[]model.Blog:
		*v = make([]model.Blog, n)
	case *[]model.FAQ:
		*v = make([]model.FAQ, n)
	case *[]model.Resource:
		*v = make([]model.Resource, n)
	case *[]model.Contact:
		*v = make([]model.Contact, n)
	case *[]model.User:
		*v = make([]model.User, n)
	}
}

func TestOverviewLogsFailures(t *testing.T) {
	var buf strings.Builder
	gw := &mockgw.MockGateway{
		GetFunc: func(context.Context, string, url.Values, any) error {
			return apperrors.Gateway("boom")
		},
	}

	svc := NewDashboardService(DashboardServiceOptions{
		Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
		Products: NewProductService(gw),
	})

	got := svc.Overview(context.Background())
	assert.Equal(t, map[string]int{"products": 0}, got)
	assert.Contains(t, buf.String(), "dashboard count failed")
}
