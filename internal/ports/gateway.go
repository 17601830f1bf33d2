package ports

import (
	"context"
	"net/url"
)

// FilePart is one file in a multipart upload. Order is preserved on the wire.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartForm carries the fields and files of a file-bearing request.
type MultipartForm struct {
	Fields map[string]string
	Files  []FilePart
}

// Gateway is the outbound API surface the entity services depend on. The
// production implementation is the HTTP client in internal/gateway; tests
// substitute hand-written doubles.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
	Upload(ctx context.Context, path string, form MultipartForm, out any) error
}
