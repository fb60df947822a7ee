// Package i18n holds the localized messages of the czconfig command.
package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations loads the embedded message files. lang may be empty, in
// which case English is used.
func NewTranslations(lang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: reading locales: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+file.Name()); err != nil {
			return nil, fmt.Errorf("i18n: loading locale file %s: %w", file.Name(), err)
		}
	}

	t := &Translations{bundle: bundle}
	if err := t.SetLanguage(lang); err != nil {
		return nil, err
	}
	return t, nil
}

// SetLanguage switches the output language. Tags like "ja-JP" or
// "ja_JP.UTF-8" are matched to the closest supported language.
func (t *Translations) SetLanguage(lang string) error {
	if lang == "" {
		t.localize = i18n.NewLocalizer(t.bundle, language.English.String())
		return nil
	}
	tag, err := language.Parse(trimEncoding(lang))
	if err != nil {
		return fmt.Errorf("i18n: language %q: %w", lang, err)
	}
	matcher := language.NewMatcher(t.bundle.LanguageTags())
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return fmt.Errorf("i18n: language %q not supported", lang)
	}
	t.localize = i18n.NewLocalizer(t.bundle, t.bundle.LanguageTags()[idx].String())
	return nil
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}
	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

func trimEncoding(lang string) string {
	for i, r := range lang {
		if r == '.' || r == '@' {
			return lang[:i]
		}
	}
	return lang
}
