// Package validators holds custom go-playground validation rules shared by the domain entities.
package validators

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
)

// ImageContentTypes lists the accepted upload content types
var ImageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	businessLocation atomic.Pointer[time.Location]
	now              = time.Now
)

// SetBusinessLocation sets the zone in which "today" is evaluated by the notpast rule.
// A nil location resets it to UTC.
func SetBusinessLocation(loc *time.Location) {
	businessLocation.Store(loc)
}

func currentLocation() *time.Location {
	if loc := businessLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notpast", NotPastDate)
	_ = v.RegisterValidation("imagetype", ImageContentType)
	return v
}

// NotPastDate accepts a time.Time whose calendar date, as written, is today or later, where
// today is taken in the business location. Zero values pass so that the rule can be combined
// with omitempty or required.
func NotPastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	y, m, d := t.Date()
	ty, tm, td := now().In(currentLocation()).Date()
	return !time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC))
}

// ImageContentType accepts the content types in ImageContentTypes, ignoring parameters.
func ImageContentType(fl validator.FieldLevel) bool {
	contentType := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	_, ok := ImageContentTypes[contentType]
	return ok
}
