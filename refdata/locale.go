package refdata

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Locale is a language the game texts are translated into.
type Locale string

const (
	LocaleEN  Locale = "en"
	LocaleFR  Locale = "fr"
	LocaleDE  Locale = "de"
	LocaleES  Locale = "es"
	LocaleIT  Locale = "it"
	LocaleNL  Locale = "nl"
	LocaleNO  Locale = "no"
	LocaleTR  Locale = "tr"
	LocaleJP  Locale = "jp"
	LocaleKR  Locale = "kr"
	LocaleRU  Locale = "ru"
	LocaleAR  Locale = "ar"
	LocalePT  Locale = "pt"
	LocaleCN  Locale = "cn"
	LocaleCNT Locale = "cnt"
	LocaleFA  Locale = "fa"
	LocaleID  Locale = "id"
	LocaleMS  Locale = "ms"
	LocaleTH  Locale = "th"
	LocaleFI  Locale = "fi"
)

var AllLocales = []Locale{
	LocaleEN, LocaleFR, LocaleDE, LocaleES, LocaleIT,
	LocaleNL, LocaleNO, LocaleTR, LocaleJP, LocaleKR,
	LocaleRU, LocaleAR, LocalePT, LocaleCN, LocaleCNT,
	LocaleFA, LocaleID, LocaleMS, LocaleTH, LocaleFI,
}

// Text holds all translations of a text id (TID).
type Text struct {
	Identifier string
	values     map[Locale]string
}

// Get returns the translation for a locale, or an empty string if there is none.
func (text Text) Get(locale Locale) string {
	return text.values[locale]
}

// EN returns the english translation.
func (text Text) EN() string {
	return text.Get(LocaleEN)
}

func (text Text) mapValues(f func(string) string) Text {
	values := make(map[Locale]string, len(text.values))
	for locale, value := range text.values {
		values[locale] = f(value)
	}

	return Text{
		Identifier: text.Identifier,
		values:     values,
	}
}

func (text Text) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(text.values)+1)
	for locale, value := range text.values {
		m[string(locale)] = value
	}
	m["identifier"] = text.Identifier

	return json.Marshal(m)
}

func (text *Text) UnmarshalJSON(b []byte) error {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return errors.Wrap(err, "failed to unmarshal text")
	}

	text.Identifier = m["identifier"]
	text.values = make(map[Locale]string, len(m))

	for _, locale := range AllLocales {
		if value, ok := m[string(locale)]; ok {
			text.values[locale] = value
		}
	}

	return nil
}
