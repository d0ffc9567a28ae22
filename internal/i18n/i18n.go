// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n translates CLI messages. It uses the go-i18n library to load
// the embedded YAML translation files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

func loadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}
	return b
}

// Init loads the translations and selects lang. Unknown languages fall back
// to English.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	if bundle == nil {
		bundle = loadBundle()
	}
	if l == "" {
		l = "en"
	}
	lang = l
	localizer = i18n.NewLocalizer(bundle, l)
}

// SetLang changes the active language.
func SetLang(l string) { Init(l) }

// GetLang returns the active language tag as given to Init.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales maps each embedded language tag to its name in that
// language.
func GetAvailableLocales() map[string]string {
	mu.Lock()
	if bundle == nil {
		bundle = loadBundle()
	}
	tags := bundle.LanguageTags()
	mu.Unlock()

	out := make(map[string]string, len(tags))
	for _, t := range tags {
		name := display.Self.Name(t)
		if name == "" {
			name = t.String()
		}
		out[t.String()] = name
	}
	return out
}

// Locales returns the available tags, sorted.
func Locales() []string {
	av := GetAvailableLocales()
	out := make([]string, 0, len(av))
	for k := range av {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T translates messageID. A single map argument is passed as template data;
// any other arguments format the translation with fmt.Sprintf. Unknown IDs
// are returned as-is.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init("en")
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := loc.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
