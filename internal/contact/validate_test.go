package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{email: "a@b.co", want: true},
		{email: "ann@example.com", want: true},
		{email: "First.Last+tag@Sub.Example.ORG", want: true},
		{email: "a@b.c.de", want: true},
		{email: "a@b", want: false},
		{email: "a b@c.com", want: false},
		{email: "a@b.c", want: false},
		{email: "a@@b.com", want: false},
		{email: "@b.com", want: false},
		{email: "a@.com", want: false},
		{email: "a@..com", want: true},
		{email: "a@b.co m", want: false},
		{email: "a\u00a0b@c.com", want: false},
		{email: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sub  Submission
		want []string
	}{
		{
			name: "all valid",
			sub:  NewSubmission("Ann", "ann@example.com", "Hello there!"),
		},
		{
			name: "short name and message",
			sub:  NewSubmission("A", "x@y.com", "short"),
			want: []string{MsgName, MsgMessage},
		},
		{
			name: "everything empty",
			sub:  NewSubmission("", "", ""),
			want: []string{MsgName, MsgEmail, MsgMessage},
		},
		{
			name: "whitespace is trimmed before measuring",
			sub:  NewSubmission("  A  ", " ann@example.com ", "   123456789   "),
			want: []string{MsgName, MsgMessage},
		},
		{
			name: "lengths count code points",
			sub:  NewSubmission("Zoë", "zoe@example.com", "héllo wörld"),
		},
		{
			name: "bad email only",
			sub:  NewSubmission("Ann", "ann@example", "Hello there!"),
			want: []string{MsgEmail},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Validate(tt.sub))
		})
	}
}

func TestNewSubmissionTrims(t *testing.T) {
	t.Parallel()

	sub := NewSubmission("\tAnn\n", " a@b.co ", " hi ")
	assert.Equal(t, Submission{Name: "Ann", Email: "a@b.co", Message: "hi"}, sub)
}

func TestNewSubmissionTrimsByteOrderMarks(t *testing.T) {
	t.Parallel()

	sub := NewSubmission("\uFEFFAnn\uFEFF", "\uFEFFann@example.com\u00a0", "\u2003Hello there!\uFEFF")
	assert.Equal(t, Submission{Name: "Ann", Email: "ann@example.com", Message: "Hello there!"}, sub)
	assert.Empty(t, Validate(sub))
}
