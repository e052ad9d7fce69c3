package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Supported locale keys. English is the canonical value; Arabic may be empty.
const (
	LocaleEN = "en"
	LocaleAR = "ar"

	DefaultLocale = LocaleEN
)

var SupportedLocales = []string{LocaleEN, LocaleAR}

func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// LocalizedText is the dual-language shape used by every user-facing text
// field. Documents written before localization was introduced store a bare
// string; both decode paths normalize that to {en: s, ar: ""}.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for the given locale, falling back to English.
func (lt LocalizedText) In(locale string) string {
	if locale == LocaleAR && lt.Ar != "" {
		return lt.Ar
	}
	return lt.En
}

func (lt LocalizedText) IsEmpty() bool {
	return lt.En == "" && lt.Ar == ""
}

func (lt *LocalizedText) UnmarshalJSON(data []byte) error {
	// Legacy documents: a plain string instead of the {en, ar} mapping
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		lt.En = s
		lt.Ar = ""
		return nil
	}

	type plain LocalizedText
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*lt = LocalizedText(p)
	return nil
}

func (lt *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*lt = LocalizedText{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return lt.UnmarshalJSON(v)
	case string:
		return lt.UnmarshalJSON([]byte(v))
	default:
		return errors.New("failed to scan LocalizedText")
	}
}

func (lt LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(lt)
}
