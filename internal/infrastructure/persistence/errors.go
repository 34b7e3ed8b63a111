package persistence

import (
	"errors"
	"fmt"

	"github.com/kagailawrence/modarflor/internal/pkg/apperr"
	"gorm.io/gorm"
)

// translateError maps gorm and driver errors to the apperr sentinels.
func translateError(err error, action, entity string, id interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey), apperr.IsUniqueViolation(err):
		return fmt.Errorf("failed to %s %s: %w", action, entity, apperr.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
}

// paginate counts the rows matched by query and loads one page of them into dest.
// Associations are preloaded for the page only.
func paginate(query *gorm.DB, offset, limit int, order string, dest interface{}, preloads ...string) (int64, error) {
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	page := base.Order(order).Offset(offset).Limit(limit)
	for _, p := range preloads {
		page = page.Preload(p, orderByID)
	}
	if err := page.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// orderByID keeps preloaded children in insertion order
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
