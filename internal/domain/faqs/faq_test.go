//go:build unit
// +build unit

package faqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFAQ_Validate(t *testing.T) {
	assert.NoError(t, (&FAQ{Question: "Do you move furniture?", Answer: "Yes, **free**."}).Validate())
	assert.ErrorContains(t, (&FAQ{Answer: "Yes"}).Validate(), "Field: Question, Tag: required")
	assert.ErrorContains(t, (&FAQ{Question: "Q"}).Validate(), "Field: Answer, Tag: required")
	assert.ErrorContains(t, (&FAQ{Question: "Q", Answer: "A", OrderIndex: -2}).Validate(), "Field: OrderIndex, Tag: gte")
}
