package service

import (
	"context"
	"log/slog"
)

// counter is what the dashboard needs from each entity service.
type counter interface {
	count(ctx context.Context) (int, error)
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Logger    *slog.Logger
	Products  *ProductService
	Blogs     *BlogService
	FAQs      *FAQService
	Resources *ResourceService
	Contacts  *ContactService
	Users     *UserService
}

// DashboardService aggregates per-entity counts for the overview page.
type DashboardService struct {
	logger  *slog.Logger
	sources map[string]counter
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sources := make(map[string]counter)
	if opts.Products != nil {
		sources["products"] = opts.Products.resource
	}
	if opts.Blogs != nil {
		sources["blogs"] = opts.Blogs.resource
	}
	if opts.FAQs != nil {
		sources["faqs"] = opts.FAQs.resource
	}
	if opts.Resources != nil {
		sources["resources"] = opts.Resources.resource
	}
	if opts.Contacts != nil {
		sources["contacts"] = opts.Contacts
	}
	if opts.Users != nil {
		sources["users"] = opts.Users.resource
	}
	return &DashboardService{logger: logger, sources: sources}
}

// Overview returns entity counts for the dashboard landing page. A failed
// count is logged and reported as zero rather than failing the whole page.
func (s *DashboardService) Overview(ctx context.Context) map[string]int {
	out := make(map[string]int, len(s.sources))
	for name, src := range s.sources {
		n, err := src.count(ctx)
		if err != nil {
			s.logger.Warn("dashboard count failed", "entity", name, "error", err)
			n = 0
		}
		out[name] = n
	}
	return out
}
