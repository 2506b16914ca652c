package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Usernames are letters, digits, dot, dash and underscore
	UsernamePattern = `^[a-zA-Z0-9._\-]+$`

	PasswordMinLength = 6

	UsernameMinLength = 3
	UsernameMaxLength = 50

	NameMinLength = 3
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Username *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// StringValidation checks one string value.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len([]rune(v.Value)) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len([]rune(v.Value)) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// NumericValidation checks an integer against an inclusive range.
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// Between sets the inclusive range
func (v *NumericValidation) Between(min, max int) *NumericValidation {
	v.Min = min
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

// FieldErrors collects per-field validation failures.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// Registration validates the account fields of a new user. It returns nil
// when every field passes.
func Registration(username, email, password, fullName string) error {
	errs := FieldErrors{}

	if !NewStringValidation(username).
		WithMinLength(UsernameMinLength).
		WithMaxLength(UsernameMaxLength).
		WithPattern(CompiledPatterns.Username).
		Validate() {
		errs["username"] = fmt.Sprintf("must be %d-%d letters, digits, '.', '-' or '_'", UsernameMinLength, UsernameMaxLength)
	}
	if !NewStringValidation(email).WithPattern(CompiledPatterns.Email).Validate() {
		errs["email"] = "must be a valid email address"
	}
	if !NewStringValidation(password).WithMinLength(PasswordMinLength).Validate() {
		errs["password"] = fmt.Sprintf("must be at least %d characters", PasswordMinLength)
	}
	if !NewStringValidation(fullName).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength).Validate() {
		errs["fullName"] = fmt.Sprintf("must be %d-%d characters", NameMinLength, NameMaxLength)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
