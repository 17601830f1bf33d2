package httpx

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shshafin/work-agency-client-sub003/internal/domain/model"
)

func multipartRequest(t *testing.T, build func(w *multipart.Writer)) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	build(mw)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParseMultipartPreservesFileOrder(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("name", "Jute bags"))
		first, err := w.CreateFormFile("images", "first.png")
		require.NoError(t, err)
		_, _ = first.Write([]byte{1})
		second, err := w.CreateFormFile("images", "second.png")
		require.NoError(t, err)
		_, _ = second.Write([]byte{2})
	})

	form, err := ParseMultipart(req)
	require.NoError(t, err)

	assert.Equal(t, "Jute bags", form.Value("name"))
	files := form.FilesFor("images")
	require.Len(t, files, 2)
	assert.Equal(t, "first.png", files[0].Filename)
	assert.Equal(t, "second.png", files[1].Filename)
	assert.Equal(t, []byte{2}, files[1].Content)
}

func TestParseMultipartSeparatesFieldsFromFiles(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("title", "Brochure"))
		f, err := w.CreateFormFile("file", "brochure.pdf")
		require.NoError(t, err)
		_, _ = f.Write([]byte("%PDF"))
	})

	form, err := ParseMultipart(req)
	require.NoError(t, err)
	assert.Equal(t, "Brochure", form.Value("title"))
	assert.Empty(t, form.Value("file"))
	assert.Len(t, form.FilesFor("file"), 1)
	assert.Empty(t, form.FilesFor("title"))
}

func TestParseMultipartRejectsNonMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	_, err := ParseMultipart(req)
	assert.Error(t, err)
}

func TestFieldMessagesUseWireNames(t *testing.T) {
	err := model.Validate(model.CreateContactRequest{Email: "nope"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	msgs := fieldMessages(verrs)
	assert.Equal(t, "this field is required", msgs["name"])
	assert.Equal(t, "must be a valid email address", msgs["email"])
	assert.NotContains(t, msgs, "Email")
}

func TestFieldMessagesMatchMultiInitialWireNames(t *testing.T) {
	err := model.Validate(model.JobApplication{
		Name:  "Rahim",
		Email: "r@example.com",
		Phone: "0123",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	msgs := fieldMessages(verrs)
	assert.Contains(t, msgs, "jobId")
	assert.NotContains(t, msgs, "jobID")
}
