// Package testutil contains helpers shared by unit and integration tests.
package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFile describes one part of a multipart upload
type TestFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// PNGHeader is the 8 byte PNG signature followed by padding, enough for content sniffing.
var PNGHeader = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 24)...)

// JPEGHeader is a minimal JPEG start-of-image marker for content sniffing.
var JPEGHeader = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 28)...)

// MultipartBody writes files under the "files" field and returns the body and its content type.
func MultipartBody(t *testing.T, files ...TestFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+f.Name+`"`)
		if f.ContentType != "" {
			header.Set("Content-Type", f.ContentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateMultipleTestFilesForm parses the given files back into a *multipart.Form
// the way gin does for an incoming request.
func CreateMultipleTestFilesForm(t *testing.T, files ...TestFile) *multipart.Form {
	t.Helper()

	body, contentType := MultipartBody(t, files...)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}
