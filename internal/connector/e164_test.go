package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "us number", number: "+15551234567", valid: true},
		{name: "single digit", number: "+1", valid: true},
		{name: "fifteen digits", number: "+123456789012345", valid: true},
		{name: "sixteen digits", number: "+1234567890123456", valid: false},
		{name: "missing plus", number: "15551234567", valid: false},
		{name: "plus only", number: "+", valid: false},
		{name: "empty", number: "", valid: false},
		{name: "letters", number: "+1555CALLNOW", valid: false},
		{name: "internal spaces", number: "+1 555 123 4567", valid: false},
		{name: "dashes", number: "+1-555-123-4567", valid: false},
		{name: "double plus", number: "++15551234567", valid: false},
		{name: "trailing whitespace", number: "+15551234567 ", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.number)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
