package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// CRUDService is the service shape behind a generic resource handler set.
type CRUDService[T any, C any, U any] interface {
	List(ctx context.Context, query url.Values) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, req C) (T, error)
	Update(ctx context.Context, id string, req U) (T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandlers serves the standard dashboard CRUD surface for one
// entity. MultipartCreate, when set, takes over create requests that arrive
// as multipart form data (file-bearing entities).
type ResourceHandlers[T any, C any, U any] struct {
	Svc             CRUDService[T, C, U]
	MultipartCreate http.HandlerFunc
}

func (h *ResourceHandlers[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context(), r.URL.Query())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	WriteData(w, http.StatusOK, items)
}

func (h *ResourceHandlers[T, C, U]) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, item)
}

func (h *ResourceHandlers[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	if h.MultipartCreate != nil && isFormPost(r) {
		h.MultipartCreate(w, r)
		return
	}

	var req C
	if !DecodeJSON(w, r, &req) {
		return
	}
	item, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, item)
}

func (h *ResourceHandlers[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	var req U
	if !DecodeJSON(w, r, &req) {
		return
	}
	item, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, item)
}

func (h *ResourceHandlers[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, map[string]any{"deleted": true})
}

var errMissingFile = errors.New("missing document file")

// productMultipartCreate builds the multipart create handler for products:
// scalar fields plus any number of images, uploaded in selection order.
func productMultipartCreate(svc *service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ParseMultipart(r)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}

		req := model.CreateProductRequest{
			Name:        form.Value("name"),
			Category:    form.Value("category"),
			Description: form.Value("description"),
			Origin:      form.Value("origin"),
		}
		created, err := svc.CreateWithImages(r.Context(), req, form.FilesFor("images"))
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteData(w, http.StatusCreated, created)
	}
}

// blogMultipartCreate handles blog creation with an optional cover image.
func blogMultipartCreate(svc *service.BlogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ParseMultipart(r)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}

		req := model.CreateBlogRequest{
			Title:   form.Value("title"),
			Content: form.Value("content"),
			Author:  form.Value("author"),
		}
		var image *ports.FilePart
		if files := form.FilesFor("image"); len(files) > 0 {
			image = &files[0]
		}
		created, err := svc.CreateWithImage(r.Context(), req, image)
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteData(w, http.StatusCreated, created)
	}
}

// resourceMultipartCreate handles resource creation; the document file is
// mandatory.
func resourceMultipartCreate(svc *service.ResourceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := ParseMultipart(r)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}

		files := form.FilesFor("file")
		if len(files) == 0 {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation_failed",
				Err:     errMissingFile,
				Fields:  map[string]string{"file": "a document file is required"},
			})
			return
		}

		req := model.CreateResourceRequest{
			Title:    form.Value("title"),
			Category: form.Value("category"),
		}
		created, err := svc.CreateWithFile(r.Context(), req, files[0])
		if err != nil {
			WriteAppError(w, err)
			return
		}
		WriteData(w, http.StatusCreated, created)
	}
}

// ContactAdminHandlers serves the dashboard's inquiry list. Contacts have no
// create or update surface here; submissions come from the public form.
type ContactAdminHandlers struct {
	Svc *service.ContactService
}

func (h *ContactAdminHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context(), r.URL.Query())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if items == nil {
		items = []model.Contact{}
	}
	WriteData(w, http.StatusOK, items)
}

func (h *ContactAdminHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, item)
}

func (h *ContactAdminHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, map[string]any{"deleted": true})
}
