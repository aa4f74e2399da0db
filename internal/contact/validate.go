package contact

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts local@domain.tld where no part holds whitespace or
// "@" and the last dot-separated segment has at least two characters.
var emailPattern = regexp.MustCompile(`(?i)^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]{2,}$`)

// isBlank matches the whitespace class excluded by emailPattern.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || unicode.In(r, unicode.Z) || r == '\uFEFF'
}

// ValidEmail reports whether s has a plausible address shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// User-facing rule messages, in evaluation order.
const (
	MsgName    = "Name must be at least 2 characters."
	MsgEmail   = "Enter a valid email address."
	MsgMessage = "Message is too short (min 10 characters)."
)

// Submission is one set of trimmed form values.
type Submission struct {
	Name    string `validate:"min=2"`
	Email   string `validate:"contact_email"`
	Message string `validate:"min=10"`
}

var fieldMessages = map[string]string{
	"Name":    MsgName,
	"Email":   MsgEmail,
	"Message": MsgMessage,
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
			return ValidEmail(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// NewSubmission trims the raw field values.
func NewSubmission(name, email, message string) Submission {
	return Submission{
		Name:    strings.TrimFunc(name, isBlank),
		Email:   strings.TrimFunc(email, isBlank),
		Message: strings.TrimFunc(message, isBlank),
	}
}

// Validate evaluates every rule and returns the messages of those that fail,
// in field order. Lengths count Unicode code points.
func Validate(s Submission) []string {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		if msg, ok := fieldMessages[fe.StructField()]; ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
