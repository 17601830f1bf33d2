package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// PublicHandlers serves the public site endpoints: home content, jobs, blog,
// FAQs, and the contact form.
type PublicHandlers struct {
	Jobs     *service.JobService
	Blogs    *service.BlogService
	FAQs     *service.FAQService
	Products *service.ProductService
	Contacts *service.ContactService
	Logger   *slog.Logger
}

func (h *PublicHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Home aggregates the landing page content. A failed upstream section is
// logged and returned empty rather than failing the whole page.
// GET /api/home.
func (h *PublicHandlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.Products.List(ctx, nil)
	if err != nil {
		h.logger().WarnContext(ctx, "home products fetch failed", "error", err)
		products = nil
	}
	blogs, err := h.Blogs.List(ctx, nil)
	if err != nil {
		h.logger().WarnContext(ctx, "home blogs fetch failed", "error", err)
		blogs = nil
	}
	jobs, err := h.Jobs.List(ctx, nil)
	if err != nil {
		h.logger().WarnContext(ctx, "home jobs fetch failed", "error", err)
		jobs = nil
	}

	WriteData(w, http.StatusOK, map[string]any{
		"products": firstN(products, 6),
		"blogs":    firstN(blogs, 3),
		"jobs":     firstN(jobs, 5),
	})
}

// ListJobs serves the public job board.
// GET /api/jobs.
func (h *PublicHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.List(r.Context(), r.URL.Query())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, jobs)
}

// GetJob serves one posting.
// GET /api/jobs/{id}.
func (h *PublicHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Jobs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, job)
}

// ApplyToJob accepts a candidate application, optionally with a passport
// scan as a multipart upload.
// POST /api/jobs/{id}/apply.
func (h *PublicHandlers) ApplyToJob(w http.ResponseWriter, r *http.Request) {
	app := model.JobApplication{JobID: r.PathValue("id")}

	var scan *ports.FilePart
	if isFormPost(r) {
		form, err := ParseMultipart(r)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}
		app.Name = form.Value("name")
		app.Email = form.Value("email")
		app.Phone = form.Value("phone")
		app.Passport = form.Value("passport")
		if files := form.FilesFor("passportScan"); len(files) > 0 {
			scan = &files[0]
		}
	} else if !DecodeJSON(w, r, &app) {
		return
	}
	app.JobID = r.PathValue("id")

	if err := h.Jobs.Apply(r.Context(), app, scan); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, map[string]any{"applied": true})
}

// ListBlogs serves published articles.
// GET /api/blogs.
func (h *PublicHandlers) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Blogs.List(r.Context(), r.URL.Query())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, blogs)
}

// GetBlog serves one article.
// GET /api/blogs/{id}.
func (h *PublicHandlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Blogs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, blog)
}

// ListFAQs serves the FAQ page content.
// GET /api/faqs.
func (h *PublicHandlers) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.FAQs.List(r.Context(), r.URL.Query())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, faqs)
}

// SubmitContact records a public inquiry.
// POST /api/contact.
func (h *PublicHandlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	contact, err := h.Contacts.Submit(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, contact)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
