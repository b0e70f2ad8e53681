// Package i18n translates catalogue keys into display text.
// Catalogues are gettext .po files embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed locales/*/default.po
var embeddedLocales embed.FS

// Supported lists the catalogues shipped with the game. The first entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(Supported)

// Catalogue is one loaded language
type Catalogue struct {
	Tag language.Tag
	po  *gotext.Po
}

// Match picks the supported language closest to locale.
// Accepts POSIX style names such as de_DE.UTF-8. Anything unrecognised maps to English.
func Match(locale string) language.Tag {
	locale = strings.SplitN(locale, ".", 2)[0]
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Load reads the catalogue best matching locale from the embedded files
func Load(locale string) (*Catalogue, error) {
	return LoadFromFS(embeddedLocales, locale)
}

// LoadFromFS reads the catalogue best matching locale from fsys
func LoadFromFS(fsys fs.FS, locale string) (*Catalogue, error) {
	tag := Match(locale)
	base, _ := tag.Base()
	path := fmt.Sprintf("locales/%s/default.po", base.String())

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalogue{Tag: tag, po: po}, nil
}

// T translates key, formatting args into the translation.
// Unknown keys are returned unchanged.
func (c *Catalogue) T(key string, args ...any) string {
	if c == nil || c.po == nil {
		return fallback(key, args...)
	}
	return c.po.Get(key, args...)
}

// Has reports whether key has a translation
func (c *Catalogue) Has(key string) bool {
	return c != nil && c.po != nil && c.po.Get(key) != key
}

func fallback(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}

var (
	mu      sync.RWMutex
	current *Catalogue
)

// SetDefault installs the catalogue used by the package-level T
func SetDefault(c *Catalogue) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}

// T translates key with the default catalogue
func T(key string, args ...any) string {
	mu.RLock()
	c := current
	mu.RUnlock()
	return c.T(key, args...)
}

// MustLoadDefault loads locale, falling back to English, and installs it as the default.
// Only a broken build (missing embedded English catalogue) panics.
func MustLoadDefault(locale string) *Catalogue {
	c, err := Load(locale)
	if err != nil {
		slog.Warn("catalogue unavailable, using English", "locale", locale, "error", err)
		c, err = Load(Supported[0].String())
		if err != nil {
			panic(fmt.Sprintf("embedded English catalogue missing: %v", err))
		}
	}
	SetDefault(c)
	return c
}
