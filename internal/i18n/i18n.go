// Package i18n provides the interface strings for the supported languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Interface string keys.
const (
	KeyExplore   = "explore"
	KeyLearn     = "learn"
	KeyQuiz      = "quiz"
	KeyAnalytics = "analytics"
	KeySearch    = "search"
	KeyLevel     = "level"
	KeyScore     = "score"
)

// DefaultLanguage is used when a requested language is not supported.
const DefaultLanguage = "en"

// Order in which languages are offered to the user.
var displayOrder = []string{"en", "hi", "ta", "bn", "te", "mr", "gu"}

type locale struct {
	Name    string            `yaml:"name"`
	Flag    string            `yaml:"flag"`
	Strings map[string]string `yaml:"strings"`
}

// Language describes one supported language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Bundle holds the string tables for all languages. It is read-only after
// construction and safe for concurrent use.
type Bundle struct {
	locales map[string]locale
	codes   []string
}

// Load reads every locales/<code>.yaml file from fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, err
	}

	b := &Bundle{locales: make(map[string]locale, len(files))}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		var loc locale
		if err := yaml.Unmarshal(raw, &loc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		code := strings.TrimSuffix(path.Base(f), ".yaml")
		b.locales[code] = loc
		b.codes = append(b.codes, code)
	}

	slices.SortStableFunc(b.codes, func(x, y string) int {
		return rank(x) - rank(y)
	})
	return b, nil
}

func rank(code string) int {
	if i := slices.Index(displayOrder, code); i >= 0 {
		return i
	}
	return len(displayOrder)
}

var defaultBundle = mustLoad()

func mustLoad() *Bundle {
	b, err := Load(localeFS)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the bundle compiled into the binary.
func Default() *Bundle {
	return defaultBundle
}

// Normalize maps a language code or BCP 47 tag such as "hi-IN" onto a
// supported code. ok is false when the language is not supported.
func (b *Bundle) Normalize(code string) (string, bool) {
	if _, ok := b.locales[code]; ok {
		return code, true
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if _, ok := b.locales[base.String()]; ok {
		return base.String(), true
	}
	return "", false
}

// T returns the string for key in lang. Unknown languages and missing keys
// yield the key itself.
func (b *Bundle) T(lang, key string) string {
	code, ok := b.Normalize(lang)
	if !ok {
		return key
	}
	if s, ok := b.locales[code].Strings[key]; ok {
		return s
	}
	return key
}

// Strings returns a copy of the full string table for lang, or nil when the
// language is unsupported.
func (b *Bundle) Strings(lang string) map[string]string {
	code, ok := b.Normalize(lang)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(b.locales[code].Strings))
	for k, v := range b.locales[code].Strings {
		out[k] = v
	}
	return out
}

// Languages lists supported languages in display order.
func (b *Bundle) Languages() []Language {
	out := make([]Language, 0, len(b.codes))
	for _, c := range b.codes {
		loc := b.locales[c]
		out = append(out, Language{Code: c, Name: loc.Name, Flag: loc.Flag})
	}
	return out
}

// Name returns the native display name of lang, or "" if unsupported.
func (b *Bundle) Name(lang string) string {
	code, ok := b.Normalize(lang)
	if !ok {
		return ""
	}
	return b.locales[code].Name
}
