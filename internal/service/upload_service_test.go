package service

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"learnhub/internal/config"
	"learnhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) UploadService {
	t.Helper()
	svc, err := NewUploadService(config.UploadConfig{
		Dir:          t.TempDir(),
		MaxSizeBytes: 1024,
	})
	require.NoError(t, err)
	return svc
}

// makeFileHeader builds a multipart.FileHeader the way fiber hands it to
// the handler.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestUploadService_Store_Success(t *testing.T) {
	svc := newTestUploadService(t)

	fh := makeFileHeader(t, "apostila.pdf", "application/pdf", []byte("%PDF-1.4 data"))
	resp, err := svc.Store(fh)

	assert.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(resp.Filename))
	assert.NotEqual(t, "apostila.pdf", resp.Filename, "stored name is regenerated")
	assert.Equal(t, "/uploads/"+resp.Filename, resp.URL)
	assert.Equal(t, "application/pdf", resp.Mimetype)

	path, err := svc.Resolve(resp.Filename)
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 data"), data)
}

func TestUploadService_Store_RejectsDisallowedType(t *testing.T) {
	svc := newTestUploadService(t)

	fh := makeFileHeader(t, "malware.exe", "application/x-msdownload", []byte("MZ"))
	_, err := svc.Store(fh)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestUploadService_Store_RejectsOversize(t *testing.T) {
	svc := newTestUploadService(t)

	fh := makeFileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 2048))
	_, err := svc.Store(fh)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestUploadService_Resolve_RejectsTraversal(t *testing.T) {
	svc := newTestUploadService(t)

	for _, name := range []string{"../etc/passwd", "..", "a/b.pdf", ""} {
		_, err := svc.Resolve(name)
		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr, "name %q must be rejected", name)
		assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	}
}

func TestUploadService_Resolve_MissingFile(t *testing.T) {
	svc := newTestUploadService(t)

	_, err := svc.Resolve("01HZXCVBNM0123456789ABCDEF.pdf")

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}
