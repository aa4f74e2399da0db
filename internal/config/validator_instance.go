package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/folio/internal/prefs"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	techTagPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9+#.-]*$`)
	prefsDrivers   = map[string]struct{}{prefs.DriverFile: {}, prefs.DriverSQLite: {}, prefs.DriverMemory: {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tech_tag", func(fl validator.FieldLevel) bool {
			return techTagPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := theme.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("prefs_driver", func(fl validator.FieldLevel) bool {
			_, ok := prefsDrivers[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
