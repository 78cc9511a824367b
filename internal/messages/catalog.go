package messages

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.en.toml
var defaultMessages []byte

// Message ids of the bundled catalog.
const (
	MenuPosition      = "MenuPosition"
	MenuHistory       = "MenuHistory"
	MenuOption        = "MenuOption"
	MenuOrdinalOption = "MenuOrdinalOption"
	NoOptions         = "NoOptions"
	ProcessingFailed  = "ProcessingFailed"
	Prompt            = "Prompt"
	Goodbye           = "Goodbye"
	ShortLicense      = "ShortLicense"
	License           = "License"
)

// Catalog renders message templates.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the bundled English catalog. Extra TOML files, given as
// filename/content pairs, override templates by id.
func New(overrides ...File) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.ParseMessageFileBytes(defaultMessages, "active.en.toml"); err != nil {
		return nil, fmt.Errorf("failed to parse bundled messages: %w", err)
	}
	for _, f := range overrides {
		if _, err := bundle.ParseMessageFileBytes(f.Data, f.Name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.Name, err)
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

// File is a message file to merge into a Catalog.
// The name must end in .toml and carry the language tag, e.g. "menu.en.toml".
type File struct {
	Name string
	Data []byte
}

// Default returns the bundled catalog. It panics only if the embedded file is broken.
func Default() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders id with data. Unknown ids render as the id itself.
func (c *Catalog) Format(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}
