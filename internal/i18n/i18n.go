// Package i18n translates user-facing messages. Bundles are embedded TOML
// files keyed by error code; the language is chosen per request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Translator holds the loaded bundle and the supported languages.
type Translator struct {
	bundle      *i18n.Bundle
	matcher     language.Matcher
	defaultLang language.Tag
	supported   []language.Tag
}

// New loads every embedded locale. defaultLang must be one of them.
func New(defaultLang string) (*Translator, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	// The bundle reports its default tag even with no messages, so the
	// supported set comes from the files actually loaded.
	loaded := make(map[language.Tag]bool, len(files))
	var others []language.Tag
	for _, f := range files {
		mf, err := bundle.LoadMessageFileFS(locales, f)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
		if loaded[mf.Tag] {
			continue
		}
		loaded[mf.Tag] = true
		if mf.Tag != def {
			others = append(others, mf.Tag)
		}
	}
	if !loaded[def] {
		return nil, fmt.Errorf("no locale file for default language %q", defaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	supported := append([]language.Tag{def}, others...)

	return &Translator{
		bundle:      bundle,
		matcher:     language.NewMatcher(supported),
		defaultLang: def,
		supported:   supported,
	}, nil
}

// Default returns the default language code.
func (t *Translator) Default() string {
	return t.defaultLang.String()
}

// IsDefault reports whether lang is the default language.
func (t *Translator) IsDefault(lang string) bool {
	return lang == "" || lang == t.defaultLang.String()
}

// Languages returns the supported language codes, default first.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.supported))
	for i, tag := range t.supported {
		out[i] = tag.String()
	}
	return out
}

// Match picks the best supported language for a query override and an
// Accept-Language header. The override wins when it names a supported
// language.
func (t *Translator) Match(override, acceptLanguage string) string {
	var prefs []language.Tag
	if override != "" {
		if tag, err := language.Parse(override); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			prefs = append(prefs, tags...)
		}
	}
	if len(prefs) == 0 {
		return t.defaultLang.String()
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLang.String()
	}
	return t.supported[idx].String()
}

// Translate returns the message for msgID in lang. When the bundle has no
// entry, fallback is returned unchanged.
func (t *Translator) Translate(lang, msgID, fallback string) string {
	localizer := i18n.NewLocalizer(t.bundle, lang, t.defaultLang.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
