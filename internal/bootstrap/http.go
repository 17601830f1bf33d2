package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shshafin/work-agency-client-sub003/config"
	"github.com/shshafin/work-agency-client-sub003/internal/gateway"
	httpx "github.com/shshafin/work-agency-client-sub003/internal/http"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Products  *service.ProductService
	Blogs     *service.BlogService
	FAQs      *service.FAQService
	Resources *service.ResourceService
	Users     *service.UserService
	Contacts  *service.ContactService
	Jobs      *service.JobService
	Dashboard *service.DashboardService
}

// NewGatewayClient builds the upstream API client. The token source pulls
// the current session's bearer token out of the request context, so
// authenticated dashboard calls forward the caller's own token.
func NewGatewayClient(cfg config.GatewayConfig) (*gateway.Client, error) {
	return gateway.New(gateway.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Token:   httpx.TokenFromContext,
	})
}

// NewServices assembles the entity services over one gateway client.
func NewServices(client *gateway.Client, auth *service.AuthService, logger *slog.Logger) ServiceContainer {
	products := service.NewProductService(client)
	blogs := service.NewBlogService(client)
	faqs := service.NewFAQService(client)
	resources := service.NewResourceService(client)
	users := service.NewUserService(client)
	contacts := service.NewContactService(client)

	return ServiceContainer{
		Auth:      auth,
		Products:  products,
		Blogs:     blogs,
		FAQs:      faqs,
		Resources: resources,
		Users:     users,
		Contacts:  contacts,
		Jobs:      service.NewJobService(client),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Logger:    logger,
			Products:  products,
			Blogs:     blogs,
			FAQs:      faqs,
			Resources: resources,
			Contacts:  contacts,
			Users:     users,
		}),
	}
}

// HTTPServerDeps groups dependencies for BuildHandler and RunHTTPServer.
type HTTPServerDeps struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// BuildHandler assembles the full middleware chain.
// Order: Recover -> Logging -> RouteGuard -> Router.
func BuildHandler(deps HTTPServerDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:         deps.Services.Auth,
		Products:     deps.Services.Products,
		Blogs:        deps.Services.Blogs,
		FAQs:         deps.Services.FAQs,
		Resources:    deps.Services.Resources,
		Users:        deps.Services.Users,
		Contacts:     deps.Services.Contacts,
		Jobs:         deps.Services.Jobs,
		Dashboard:    deps.Services.Dashboard,
		CookieDomain: cfg.HTTP.CookieDomain,
		CookieMaxAge: cfg.Auth.CookieMaxAge,
		Logger:       logger,
	})

	h := httpx.RouteGuard(httpx.GuardConfig{
		ProtectedPrefixes: []string{"/dashboard"},
		AuthOnlyPaths:     []string{"/login"},
		LoginPath:         "/login",
		LandingPath:       "/dashboard",
		Matcher:           []string{"/dashboard", "/login"},
	})(router)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}

// RunHTTPServer starts the server and blocks until a shutdown signal or a
// fatal server error.
func RunHTTPServer(ctx context.Context, deps HTTPServerDeps) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := deps.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      BuildHandler(deps),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
