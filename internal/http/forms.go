package httpx

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// maxUploadBytes bounds a whole multipart submission.
const maxUploadBytes = 32 << 20

// FormData is a parsed multipart submission: scalar fields plus file parts
// in the order the client sent them.
type FormData struct {
	Fields map[string]string
	Files  []ports.FilePart
}

// Value returns a scalar field, or empty when absent.
func (f FormData) Value(name string) string {
	return f.Fields[name]
}

// FilesFor returns the file parts submitted under one field name, keeping
// submission order.
func (f FormData) FilesFor(name string) []ports.FilePart {
	var out []ports.FilePart
	for _, part := range f.Files {
		if part.Field == name {
			out = append(out, part)
		}
	}
	return out
}

// ParseMultipart reads a multipart form body part by part so that file order
// survives into the resulting FormData. It rejects non-multipart bodies and
// submissions over the size cap.
func ParseMultipart(r *http.Request) (FormData, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return FormData{}, errors.New("expected multipart form data")
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return FormData{}, fmt.Errorf("read multipart body: %w", err)
	}

	out := FormData{Fields: make(map[string]string)}
	var total int64
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return FormData{}, fmt.Errorf("read multipart part: %w", err)
		}

		content, err := io.ReadAll(io.LimitReader(part, maxUploadBytes+1))
		closeErr := part.Close()
		if err != nil {
			return FormData{}, fmt.Errorf("read part %q: %w", part.FormName(), err)
		}
		if closeErr != nil {
			return FormData{}, fmt.Errorf("close part %q: %w", part.FormName(), closeErr)
		}

		total += int64(len(content))
		if total > maxUploadBytes {
			return FormData{}, errors.New("form data exceeds size limit")
		}

		if part.FileName() != "" {
			out.Files = append(out.Files, ports.FilePart{
				Field:    part.FormName(),
				Filename: part.FileName(),
				Content:  content,
			})
			continue
		}
		out.Fields[part.FormName()] = string(content)
	}

	return out, nil
}

// fieldMessages flattens validator errors into per-field messages. The
// shared validator reports JSON wire names, so the keys match what the
// client submitted.
func fieldMessages(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageForTag(fe)
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}
