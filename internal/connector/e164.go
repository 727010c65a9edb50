package connector

import (
	"fmt"
	"regexp"
)

// e164Pattern matches the E.164 format: a leading '+' followed by
// 1 to 15 digits, nothing else.
var e164Pattern = regexp.MustCompile(`^\+[0-9]{1,15}$`)

// ValidatePhoneNumber checks that number is a well-formed E.164 phone
// number. Purely local; no provider call.
func ValidatePhoneNumber(number string) error {
	if !e164Pattern.MatchString(number) {
		return fmt.Errorf("invalid phone number %q: expected E.164 format (e.g. +15551234567)", number)
	}
	return nil
}
