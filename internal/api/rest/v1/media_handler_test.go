//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/media"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadContext(t *testing.T, files ...testutil.TestFile) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, contentType := testutil.MultipartBody(t, files...)
	req, err := http.NewRequest(http.MethodPost, "/uploads", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestMediaHandler_Upload_Success(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	mockMediaService.On("Upload", mock.Anything, mock.MatchedBy(func(form interface{}) bool {
		return form != nil
	}), uint(1)).Return([]*media.Media{
		{ID: 1, FileName: "3f1c.png", OriginalName: "floor.png", ContentType: "image/png", Size: 32, URL: "/api/v1/media/3f1c.png", UploadedBy: 1},
	}, nil)

	c, w := newUploadContext(t, testutil.TestFile{Name: "floor.png", ContentType: "image/png", Content: testutil.PNGHeader})
	withClaims(c, adminClaims)
	handler.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp []MediaResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "/api/v1/media/3f1c.png", resp[0].URL)
	assert.Equal(t, "floor.png", resp[0].OriginalName)
	mockMediaService.AssertExpectations(t)
}

func TestMediaHandler_Upload_InvalidData_Error(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/uploads", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	withClaims(c, adminClaims)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")
}

func TestMediaHandler_Upload_Rejected(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	mockMediaService.On("Upload", mock.Anything, mock.Anything, uint(1)).
		Return(nil, apperr.Invalid("file %q is not an image", "notes.txt"))

	c, w := newUploadContext(t, testutil.TestFile{Name: "notes.txt", ContentType: "text/plain", Content: []byte("hello")})
	withClaims(c, adminClaims)
	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "is not an image")
}

func TestMediaHandler_Upload_RequiresClaims(t *testing.T) {
	handler := NewMediaHandler(new(MockMediaService))

	c, w := newUploadContext(t, testutil.TestFile{Name: "floor.png", Content: testutil.PNGHeader})
	handler.Upload(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMediaHandler_List(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	page := pagination.Page[*media.Media]{
		Items: []*media.Media{{ID: 2, FileName: "a.jpg"}, {ID: 1, FileName: "b.jpg"}},
		Meta:  pagination.NewMeta(pagination.New(1, 2), 5),
	}
	mockMediaService.On("List", mock.Anything, pagination.Params{Page: 1, Limit: 2}).Return(page, nil)

	c, w := newJSONContext(t, http.MethodGet, "/uploads?limit=2", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse[MediaResponse]
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestMediaHandler_DeleteByID(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	mockMediaService.On("DeleteByID", mock.Anything, uint(4)).Return(nil)
	mockMediaService.On("DeleteByID", mock.Anything, uint(5)).Return(apperr.NotFound("media", 5))

	c, w := newJSONContext(t, http.MethodDelete, "/uploads/4", nil)
	withID(c, "4")
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNoContent, w.Code)

	c, w = newJSONContext(t, http.MethodDelete, "/uploads/5", nil)
	withID(c, "5")
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaHandler_Serve(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService)

	mockMediaService.On("Download", mock.Anything, "3f1c.png").
		Return(testutil.PNGHeader, &media.Media{FileName: "3f1c.png", ContentType: "image/png"}, nil)
	mockMediaService.On("Download", mock.Anything, "missing.png").
		Return(nil, nil, fmt.Errorf("media %s %w", "missing.png", apperr.ErrNotFound))

	c, w := newJSONContext(t, http.MethodGet, "/media/3f1c.png", nil)
	c.Params = gin.Params{{Key: "file", Value: "3f1c.png"}}
	handler.Serve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, testutil.PNGHeader, w.Body.Bytes())

	c, w = newJSONContext(t, http.MethodGet, "/media/missing.png", nil)
	c.Params = gin.Params{{Key: "file", Value: "missing.png"}}
	handler.Serve(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
