// Package media defines uploaded images and the storage contracts behind them.
package media

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"github.com/kagailawrence/modarflor/internal/pkg/pagination"
	"github.com/kagailawrence/modarflor/internal/pkg/validators"
)

// FormField is the multipart field carrying uploaded files
const FormField = "files"

var validate = validators.New()

// Media entity. FileName is the generated storage name, OriginalName the client's.
type Media struct {
	ID           uint
	FileName     string `validate:"required,min=1,max=255"`
	OriginalName string `validate:"required,min=1,max=255"`
	ContentType  string `validate:"required,imagetype"`
	Size         int64  `validate:"required,min=1"`
	URL          string `validate:"required,max=500"`
	UploadedBy   uint
	CreatedAt    time.Time
}

// Validate for validating Media struct
func (m *Media) Validate() error {
	return apperr.FromValidator(validate.Struct(m))
}

// MediaRepository defines the persistence operations for media metadata
type MediaRepository interface {
	Create(ctx context.Context, media *Media) error
	List(ctx context.Context, page pagination.Params) ([]*Media, int64, error)
	GetByID(ctx context.Context, id uint) (*Media, error)
	GetByFileName(ctx context.Context, fileName string) (*Media, error)
	DeleteByID(ctx context.Context, id uint) error
}

// MediaConnector stores and retrieves the image bytes
type MediaConnector interface {
	// Upload stores data under fileName
	Upload(ctx context.Context, fileName, contentType string, data []byte) error
	// Download returns the stored bytes; a missing object yields apperr.ErrNotFound
	Download(ctx context.Context, fileName string) ([]byte, error)
	// Delete removes the stored object; deleting a missing object is not an error
	Delete(ctx context.Context, fileName string) error
}

// MediaService defines the upload library operations
type MediaService interface {
	// Upload stores every image of the "files" field and records its metadata
	Upload(ctx context.Context, form *multipart.Form, userID uint) ([]*Media, error)
	List(ctx context.Context, page pagination.Params) (pagination.Page[*Media], error)
	GetByID(ctx context.Context, id uint) (*Media, error)
	// DeleteByID removes the stored object and its metadata
	DeleteByID(ctx context.Context, id uint) error
	// Download returns the bytes and metadata of a stored file by its storage name
	Download(ctx context.Context, fileName string) ([]byte, *Media, error)
}
