// Package colors provides the language colour table used to decorate
// repository rows. The built-in palette is embedded as TOML and can be
// extended or overridden from user configuration.
package colors

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/hubfeed/internal/core/ports/driven"
)

//go:embed colors.toml
var builtinTOML []byte

// Ensure Table implements the interface.
var _ driven.LanguageColors = (*Table)(nil)

// Table is a read-only language to colour mapping.
type Table struct {
	colors map[string]string
}

// paletteFile is the on-disk shape of a colour palette.
type paletteFile struct {
	Colors map[string]string `toml:"colors"`
}

// New returns the built-in palette with overrides applied on top.
// Empty override values remove a language from the table.
func New(overrides map[string]string) (*Table, error) {
	builtin, err := Parse(builtinTOML)
	if err != nil {
		return nil, fmt.Errorf("load builtin palette: %w", err)
	}

	colors := make(map[string]string, len(builtin.colors)+len(overrides))
	for lang, c := range builtin.colors {
		colors[lang] = c
	}
	for lang, c := range overrides {
		if c == "" {
			delete(colors, lang)
			continue
		}
		colors[lang] = c
	}
	return &Table{colors: colors}, nil
}

// Parse reads a palette from TOML with a top-level [colors] table.
func Parse(data []byte) (*Table, error) {
	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	if file.Colors == nil {
		file.Colors = make(map[string]string)
	}
	return &Table{colors: file.Colors}, nil
}

// Color returns the colour for language, or "" when it is not in the table.
func (t *Table) Color(language string) string {
	if t == nil || language == "" {
		return ""
	}
	return t.colors[language]
}

// Languages returns the languages in the table, sorted.
func (t *Table) Languages() []string {
	langs := make([]string, 0, len(t.colors))
	for lang := range t.colors {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Len returns the number of languages in the table.
func (t *Table) Len() int {
	return len(t.colors)
}
