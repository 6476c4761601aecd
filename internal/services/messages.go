package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/restevesd/arnes/internal/models"
)

// Locale selects the language advisory and validation messages are rendered in
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleES
)

// Catalog renders user-facing text for one locale
type Catalog struct {
	locale      Locale
	advice      map[models.AdviceCode]func(selected, estimated int) string
	validation  map[error]string
	unavailable string
}

var catalogs = map[Locale]*Catalog{
	LocaleES: {
		locale: LocaleES,
		advice: map[models.AdviceCode]func(selected, estimated int) string{
			models.AdviceMatch: func(selected, estimated int) string {
				return fmt.Sprintf("¡Gran elección! Creemos que estas botas (tamaño %d) se adaptarán bien a su perro. La talla estimada óptima es %d.", selected, estimated)
			},
			models.AdviceSlightlySmall: func(_, estimated int) string {
				return fmt.Sprintf("Las botas que has seleccionado podrían ser un poco PEQUEÑAS para un perro tan grande como el suyo. Recomendamos considerar botas de tamaño %d.", estimated)
			},
			models.AdviceTooSmall: func(selected, estimated int) string {
				return fmt.Sprintf("Las botas que has seleccionado (%d) podrían ser DEMASIADO PEQUEÑAS para un perro tan grande como el suyo. Recomendamos unas botas de tamaño %d.", selected, estimated)
			},
			models.AdviceSlightlyLarge: func(_, estimated int) string {
				return fmt.Sprintf("Las botas que has seleccionado podrían ser un poco GRANDES para un perro tan pequeño como el suyo. Recomendamos considerar botas de tamaño %d.", estimated)
			},
			models.AdviceTooLarge: func(selected, estimated int) string {
				return fmt.Sprintf("Las botas que has seleccionado (%d) podrían ser DEMASIADO GRANDES para un perro tan pequeño como el suyo. Recomendamos unas botas de tamaño %d.", selected, estimated)
			},
		},
		validation: map[error]string{
			ErrInvalidHarness:    "Por favor, ingrese un tamaño de arnés válido (mayor a 0 y menor o igual a 100 cm).",
			ErrEmptyBootInput:    "Por favor, ingrese un tamaño de bota.",
			ErrInvalidBootFormat: "Por favor, ingrese un tamaño de bota válido (número).",
			ErrInvalidBoot:       "Por favor, ingrese un tamaño de bota válido (mayor a 0).",
		},
		unavailable: "No se pudo realizar la predicción. Por favor, inténtelo de nuevo más tarde.",
	},
	LocaleEN: {
		locale: LocaleEN,
		advice: map[models.AdviceCode]func(selected, estimated int) string{
			models.AdviceMatch: func(selected, estimated int) string {
				return fmt.Sprintf("Great choice! We think these boots (size %d) will fit your dog well. The estimated optimal size is %d.", selected, estimated)
			},
			models.AdviceSlightlySmall: func(_, estimated int) string {
				return fmt.Sprintf("The boots you selected might be a little SMALL for a dog as big as yours. We recommend considering boots of size %d.", estimated)
			},
			models.AdviceTooSmall: func(selected, estimated int) string {
				return fmt.Sprintf("The boots you selected (%d) might be TOO SMALL for a dog as big as yours. We recommend boots of size %d.", selected, estimated)
			},
			models.AdviceSlightlyLarge: func(_, estimated int) string {
				return fmt.Sprintf("The boots you selected might be a little LARGE for a dog as small as yours. We recommend considering boots of size %d.", estimated)
			},
			models.AdviceTooLarge: func(selected, estimated int) string {
				return fmt.Sprintf("The boots you selected (%d) might be TOO LARGE for a dog as small as yours. We recommend boots of size %d.", selected, estimated)
			},
		},
		validation: map[error]string{
			ErrInvalidHarness:    "Please enter a valid harness size (greater than 0 and at most 100 cm).",
			ErrEmptyBootInput:    "Please enter a boot size.",
			ErrInvalidBootFormat: "Please enter a valid boot size (a number).",
			ErrInvalidBoot:       "Please enter a valid boot size (greater than 0).",
		},
		unavailable: "The prediction could not be made. Please try again later.",
	},
}

// ParseLocale accepts a locale name such as "es", "EN" or "es-ES"
func ParseLocale(s string) (Locale, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	if _, ok := catalogs[Locale(tag)]; !ok {
		return "", fmt.Errorf("unsupported message locale %q", s)
	}
	return Locale(tag), nil
}

// CatalogFor returns the catalog for a locale, falling back to DefaultLocale
func CatalogFor(locale Locale) *Catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// Locale returns the catalog's language
func (c *Catalog) Locale() Locale {
	return c.locale
}

// Advice renders the message for an advisory code
func (c *Catalog) Advice(code models.AdviceCode, selected, estimated int) string {
	render, ok := c.advice[code]
	if !ok {
		return string(code)
	}
	return render(selected, estimated)
}

// ErrorMessage renders a corrective instruction for an advisor error.
// Validation errors get their specific text; anything else reads as "try again later".
func (c *Catalog) ErrorMessage(err error) string {
	for sentinel, msg := range c.validation {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return c.unavailable
}
