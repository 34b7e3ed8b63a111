//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/catalog"
	"github.com/kagailawrence/modarflor/internal/domain/projects"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceHandler_List(t *testing.T) {
	mockCatalogService := new(MockServiceCatalogService)
	handler := NewServiceHandler(mockCatalogService)

	mockCatalogService.On("List", mock.Anything).Return([]*catalog.Service{
		{
			ID:          1,
			Title:       "Hardwood Installation",
			Description: "Solid **oak** and maple",
			Features:    []catalog.ServiceFeature{{ID: 3, ServiceID: 1, Description: "Free estimate"}},
		},
	}, nil)

	c, w := newJSONContext(t, http.MethodGet, "/services", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse[ServiceResponse]
	decodeBody(t, w, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Hardwood Installation", resp.Data[0].Title)
	assert.Contains(t, resp.Data[0].DescriptionHTML, "<strong>oak</strong>")
	require.Len(t, resp.Data[0].Features, 1)
	assert.Equal(t, "Free estimate", resp.Data[0].Features[0].Description)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestServiceHandler_List_EmptyIsArray(t *testing.T) {
	mockCatalogService := new(MockServiceCatalogService)
	handler := NewServiceHandler(mockCatalogService)

	mockCatalogService.On("List", mock.Anything).Return([]*catalog.Service{}, nil)

	c, w := newJSONContext(t, http.MethodGet, "/services", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestServiceHandler_Create(t *testing.T) {
	mockCatalogService := new(MockServiceCatalogService)
	handler := NewServiceHandler(mockCatalogService)

	req := ServiceRequest{Title: "Tile", Description: "Porcelain", OrderIndex: 2, Features: []string{"Waterproof"}}
	mockCatalogService.On("Create", mock.Anything, req.ToInput()).
		Return(&catalog.Service{ID: 4, Title: "Tile", Description: "Porcelain", OrderIndex: 2,
			Features: []catalog.ServiceFeature{{ID: 1, ServiceID: 4, Description: "Waterproof"}}}, nil)

	c, w := newJSONContext(t, http.MethodPost, "/services", req)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Waterproof")
	mockCatalogService.AssertExpectations(t)
}

func TestServiceHandler_Create_Errors(t *testing.T) {
	mockCatalogService := new(MockServiceCatalogService)
	handler := NewServiceHandler(mockCatalogService)

	c, w := newJSONContext(t, http.MethodPost, "/services", ServiceRequest{Description: "no title"})
	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field: Title, Tag: required")

	mockCatalogService.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset by peer"))

	c, w = newJSONContext(t, http.MethodPost, "/services", ServiceRequest{Title: "Tile", Description: "x"})
	handler.Create(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), internalErrorMessage)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Len(t, c.Errors, 1)
}

func TestServiceHandler_UpdateAndDelete(t *testing.T) {
	mockCatalogService := new(MockServiceCatalogService)
	handler := NewServiceHandler(mockCatalogService)

	mockCatalogService.On("Update", mock.Anything, uint(7), mock.Anything).Return(nil, apperr.NotFound("service", 7))
	mockCatalogService.On("DeleteByID", mock.Anything, uint(3)).Return(nil)

	c, w := newJSONContext(t, http.MethodPut, "/services/7", ServiceRequest{Title: "Tile", Description: "x"})
	withID(c, "7")
	handler.Update(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newJSONContext(t, http.MethodDelete, "/services/3", nil)
	withID(c, "3")
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProjectHandler_List_Filters(t *testing.T) {
	mockProjectService := new(MockProjectService)
	handler := NewProjectHandler(mockProjectService)

	page := pagination.Page[*projects.Project]{
		Items: []*projects.Project{{
			ID:       1,
			Title:    "Lakeside Kitchen",
			Category: "Residential",
			Images: []projects.ProjectImage{
				{ID: 1, URL: "/a.jpg"},
				{ID: 2, URL: "/b.jpg", IsFeatured: true},
			},
		}},
		Meta: pagination.NewMeta(pagination.New(2, 5), 6),
	}
	mockProjectService.On("List", mock.Anything, mock.MatchedBy(func(q *projects.ProjectQuery) bool {
		return q.Category == "Residential" && q.Type == "Tile" && q.Page.Page == 2 && q.Page.Limit == 5
	})).Return(page, nil)

	c, w := newJSONContext(t, http.MethodGet, "/projects?category=Residential&type=Tile&page=2&limit=5", nil)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse[ProjectResponse]
	decodeBody(t, w, &resp)
	require.Len(t, resp.Data, 1)
	require.NotNil(t, resp.Data[0].FeaturedImage)
	assert.Equal(t, "/b.jpg", resp.Data[0].FeaturedImage.URL)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	mockProjectService.AssertExpectations(t)
}

func TestProjectHandler_Create(t *testing.T) {
	mockProjectService := new(MockProjectService)
	handler := NewProjectHandler(mockProjectService)

	mockProjectService.On("Create", mock.Anything, mock.MatchedBy(func(in *projects.ProjectInput) bool {
		return len(in.Images) == 2 && in.Images[1].IsFeatured
	})).Return(&projects.Project{ID: 3, Title: "Loft", Category: "Commercial"}, nil)

	body := `{"title":"Loft","category":"Commercial","images":[{"url":"/1.jpg"},{"url":"/2.jpg","is_featured":true}]}`
	c, w := newJSONContext(t, http.MethodPost, "/projects", body)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockProjectService.AssertExpectations(t)

	c, w = newJSONContext(t, http.MethodPost, "/projects", `{"title":"Loft","category":"Commercial","images":[{"alt":"x"}]}`)
	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field: URL, Tag: required")
}

func TestProjectHandler_Categories(t *testing.T) {
	mockProjectService := new(MockProjectService)
	handler := NewProjectHandler(mockProjectService)

	mockProjectService.On("Categories", mock.Anything).Return(nil, nil).Once()

	c, w := newJSONContext(t, http.MethodGet, "/projects/categories", nil)
	handler.Categories(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	mockProjectService.On("Categories", mock.Anything).Return([]string{"Commercial", "Residential"}, nil).Once()

	c, w = newJSONContext(t, http.MethodGet, "/projects/categories", nil)
	handler.Categories(c)
	assert.JSONEq(t, `{"data":["Commercial","Residential"]}`, w.Body.String())
}
