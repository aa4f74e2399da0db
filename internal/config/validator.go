package config

import (
	"fmt"
	"strings"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ValidateSite performs schema and cross-field validation on the site.
func ValidateSite(site *Site) error {
	if site == nil {
		return folioerrors.NewValidationError("site", "site is nil", nil)
	}

	if err := validatorInstance().Struct(site); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(site.Skills))
	for i, skill := range site.Skills {
		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if first, ok := seen[key]; ok {
			return folioerrors.NewValidationError(fieldForSkill(i, "name"), fmt.Sprintf("duplicate skill %q (first at skills[%d])", skill.Name, first), nil)
		}
		seen[key] = i
	}

	return nil
}
