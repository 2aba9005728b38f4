package site

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/skulafrica/sitebuilder/core"
)

var (
	themeModeTag  = "thememode"
	themeModeText = "must be one of: classic, minimal, modern, dark, gradient"

	fontStyleTag  = "fontstyle"
	fontStyleText = "must be one of the supported fonts"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(themeModeTag, themeModeValidation)
	core.RegisterCustomTranslation(validate, translator, themeModeTag, themeModeText)

	_ = validate.RegisterValidation(fontStyleTag, fontStyleValidation)
	core.RegisterCustomTranslation(validate, translator, fontStyleTag, fontStyleText)
}

func themeModeValidation(fl validator.FieldLevel) bool {
	return ValidThemeMode(ThemeMode(fl.Field().String()))
}

func fontStyleValidation(fl validator.FieldLevel) bool {
	return ValidFontStyle(fl.Field().String())
}
