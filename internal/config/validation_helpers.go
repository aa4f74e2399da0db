package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// convertValidationError normalizes validator errors into folio validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return folioerrors.NewValidationError(field, msg, err)
	}

	return folioerrors.NewValidationError("site", err.Error(), err)
}

// yamlishFieldName turns "Site.Settings.Prefs.Driver" into
// "settings.prefs.driver" and "Site.Skills[1].Name" into "skills[1].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

func fieldForSkill(index int, field string) string {
	return fmt.Sprintf("skills[%d].%s", index, field)
}
