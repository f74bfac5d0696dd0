package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported content language.
type Lang string

const (
	LangUz Lang = "uz"
	LangRu Lang = "ru"
	LangEn Lang = "en"

	DefaultLang = LangUz
)

// ParseLang maps a header or path value onto the closed language set.
// Empty input resolves to DefaultLang.
func ParseLang(raw string) (Lang, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch Lang(value) {
	case "":
		return DefaultLang, nil
	case LangUz, LangRu, LangEn:
		return Lang(value), nil
	}
	return "", fmt.Errorf("unsupported language %q", raw)
}

// NegotiateLang picks the highest weighted supported language from an
// Accept-Language value. Region and script subtags are ignored, so en-US
// selects en. Malformed or unmatched values yield fallback.
func NegotiateLang(acceptLanguage string, fallback Lang) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return fallback
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		switch lang := Lang(base.String()); lang {
		case LangUz, LangRu, LangEn:
			return lang
		}
	}
	return fallback
}
