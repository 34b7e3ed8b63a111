//go:build unit
// +build unit

package testimonials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestimonial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		content string
		wantErr string
	}{
		{"five stars", 5, "Great work", ""},
		{"one star", 1, "Slow", ""},
		{"zero rating", 0, "Great work", "Field: Rating, Tag: required"},
		{"six stars", 6, "Great work", "Field: Rating, Tag: max"},
		{"empty content", 4, "", "Field: Content, Tag: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := &Testimonial{Name: "Jane", Content: tt.content, Rating: tt.rating}
			err := tm.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
