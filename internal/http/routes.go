package httpx

import (
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Products  *service.ProductService
	Blogs     *service.BlogService
	FAQs      *service.FAQService
	Resources *service.ResourceService
	Users     *service.UserService
	Contacts  *service.ContactService
	Jobs      *service.JobService
	Dashboard *service.DashboardService

	CookieDomain string
	CookieMaxAge time.Duration
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. The edge route guard is
// applied outside this router so it also covers paths no handler owns.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		CookieMaxAge: services.CookieMaxAge,
		Logger:       services.Logger,
	}
	mux.HandleFunc("POST /login", authHandlers.Login)
	mux.HandleFunc("POST /logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	public := &PublicHandlers{
		Jobs:     services.Jobs,
		Blogs:    services.Blogs,
		FAQs:     services.FAQs,
		Products: services.Products,
		Contacts: services.Contacts,
		Logger:   services.Logger,
	}
	mux.HandleFunc("GET /api/home", public.Home)
	mux.HandleFunc("GET /api/jobs", public.ListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", public.GetJob)
	mux.HandleFunc("POST /api/jobs/{id}/apply", public.ApplyToJob)
	mux.HandleFunc("GET /api/blogs", public.ListBlogs)
	mux.HandleFunc("GET /api/blogs/{id}", public.GetBlog)
	mux.HandleFunc("GET /api/faqs", public.ListFAQs)
	mux.HandleFunc("POST /api/contact", public.SubmitContact)

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	registerDashboardRoutes(mux, services)

	return mux
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// gated builds the session-plus-role middleware chain for dashboard routes.
// The cookie domain rides along so a forced logout clears the same cookie
// login set.
func gated(auth SessionResolver, cookieDomain string, role domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireSession(auth, cookieDomain)(RequireRole(role)(next))
	}
}

func registerDashboardRoutes(mux *http.ServeMux, services RouterServices) {
	auth := services.Auth
	domain := services.CookieDomain

	dashboard := &DashboardHandlers{Svc: services.Dashboard}
	moderatorUp := gated(auth, domain, domainauth.RoleModerator)
	mux.Handle("GET /api/dashboard/overview", moderatorUp(http.HandlerFunc(dashboard.Overview)))
	mux.Handle("GET /api/dashboard/nav", moderatorUp(http.HandlerFunc(dashboard.Nav)))

	products := &ResourceHandlers[model.Product, model.CreateProductRequest, model.UpdateProductRequest]{
		Svc:             services.Products,
		MultipartCreate: productMultipartCreate(services.Products),
	}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/dashboard/products",
		Create:     products.Create,
		List:       products.List,
		GetByID:    products.GetByID,
		Update:     products.Update,
		Delete:     products.Delete,
		Middleware: gated(auth, domain, domainauth.RoleAdmin),
	})

	blogs := &ResourceHandlers[model.Blog, model.CreateBlogRequest, model.UpdateBlogRequest]{
		Svc:             services.Blogs,
		MultipartCreate: blogMultipartCreate(services.Blogs),
	}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/dashboard/blogs",
		Create:     blogs.Create,
		List:       blogs.List,
		GetByID:    blogs.GetByID,
		Update:     blogs.Update,
		Delete:     blogs.Delete,
		Middleware: gated(auth, domain, domainauth.RoleModerator),
	})

	faqs := &ResourceHandlers[model.FAQ, model.CreateFAQRequest, model.UpdateFAQRequest]{
		Svc: services.FAQs,
	}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/dashboard/faqs",
		Create:     faqs.Create,
		List:       faqs.List,
		GetByID:    faqs.GetByID,
		Update:     faqs.Update,
		Delete:     faqs.Delete,
		Middleware: gated(auth, domain, domainauth.RoleModerator),
	})

	resources := &ResourceHandlers[model.Resource, model.CreateResourceRequest, model.UpdateResourceRequest]{
		Svc:             services.Resources,
		MultipartCreate: resourceMultipartCreate(services.Resources),
	}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/dashboard/resources",
		Create:     resources.Create,
		List:       resources.List,
		GetByID:    resources.GetByID,
		Update:     resources.Update,
		Delete:     resources.Delete,
		Middleware: gated(auth, domain, domainauth.RoleAdmin),
	})

	users := &ResourceHandlers[model.User, model.CreateUserRequest, model.UpdateUserRequest]{
		Svc: services.Users,
	}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/dashboard/users",
		Create:     users.Create,
		List:       users.List,
		GetByID:    users.GetByID,
		Update:     users.Update,
		Delete:     users.Delete,
		Middleware: gated(auth, domain, domainauth.RoleSuperAdmin),
	})

	contacts := &ContactAdminHandlers{Svc: services.Contacts}
	contactGate := gated(auth, domain, domainauth.RoleModerator)
	mux.Handle("GET /api/dashboard/contacts", contactGate(http.HandlerFunc(contacts.List)))
	mux.Handle("GET /api/dashboard/contacts/{id}", contactGate(http.HandlerFunc(contacts.GetByID)))
	mux.Handle("DELETE /api/dashboard/contacts/{id}", contactGate(http.HandlerFunc(contacts.Delete)))
}

// crudRoutes describes standard CRUD routes for a resource base path.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
