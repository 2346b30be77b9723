// Package i18n looks up localized display labels for measurement types and devices.
//
// Labels are keyed by their English text; English needs no entries.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var spanish = map[string]string{
	// Measurement types
	"Heart Rate":               "Frecuencia cardíaca",
	"Oxygen Saturation":        "Saturación de oxígeno",
	"Step Count":               "Recuento de pasos",
	"Distance Walking Running": "Distancia caminando y corriendo",

	// Devices
	"Apple Watch": "Apple Watch",
	"Smart Band":  "Pulsera inteligente",
	"Unknown":     "Desconocido",
}

var labels = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range spanish {
		if err := b.SetString(language.Spanish, key, text); err != nil {
			panic(fmt.Sprintf("invalid label %q: %v", key, err))
		}
	}
	return b
}

// Translator resolves labels for one locale
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// NewTranslator creates a Translator for the best supported match of locale
// Returns an error if locale is not a valid BCP 47 tag
func NewTranslator(locale string) (*Translator, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	_, index, _ := language.NewMatcher(supported).Match(requested)
	tag := supported[index]

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(labels)),
	}, nil
}

// Tag returns the language labels are resolved in
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Label returns the localized text of an English label, or the label itself when
// no translation exists
// Keys are never interpreted as format strings
func (t *Translator) Label(key string) string {
	if _, ok := spanish[key]; !ok {
		return key
	}
	return t.printer.Sprintf(key)
}
