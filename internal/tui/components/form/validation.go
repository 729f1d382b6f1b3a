package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation messages shown under a field.
const (
	msgRequired = "必填"
	msgTooShort = "至少 %d 个字"
	msgTooLong  = "最多 %d 个字"
)

// FieldValidation holds runtime validation rules for a form field. Lengths
// count runes of the value as typed; blank values are judged only by Required.
type FieldValidation struct {
	Required  bool
	MinLength int
	MaxLength int
}

// ValidateText returns the message for the first failed rule, or "".
func (v FieldValidation) ValidateText(value string) string {
	if strings.TrimSpace(value) == "" {
		if v.Required {
			return msgRequired
		}
		return ""
	}

	switch n := utf8.RuneCountInString(value); {
	case v.MinLength > 0 && n < v.MinLength:
		return fmt.Sprintf(msgTooShort, v.MinLength)
	case v.MaxLength > 0 && n > v.MaxLength:
		return fmt.Sprintf(msgTooLong, v.MaxLength)
	}
	return ""
}
