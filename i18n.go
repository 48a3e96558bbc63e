package hashpages

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle returns an i18n bundle with TOML message files enabled, ready
// for [Localize]. Message files are loaded by the caller:
//
//	bundle := hashpages.NewBundle(language.English)
//	bundle.MustLoadMessageFile("active.es.toml")
func NewBundle(tag language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Localize wraps a page so its title is resolved through the localizer,
// treating the inner page's title as the message ID. Titles with no message
// in the bundle fall back to the raw title, so partially translated
// registries stay usable. Everything else, including the dispose capability,
// is forwarded to the inner page.
func Localize(page Page, localizer *i18n.Localizer) Page {
	return localizedPage{Page: page, localizer: localizer}
}

// LocalizeRegistry rebuilds a registry with every page's title localized for
// the given language preferences.
func LocalizeRegistry(reg *Registry, bundle *i18n.Bundle, langs ...string) (*Registry, error) {
	localizer := i18n.NewLocalizer(bundle, langs...)
	pages := make([]Page, 0, len(reg.Pages()))
	for _, p := range reg.Pages() {
		pages = append(pages, Localize(p, localizer))
	}
	return NewRegistry(reg.DefaultRoute(), pages...)
}

type localizedPage struct {
	Page
	localizer *i18n.Localizer
}

func (p localizedPage) Title() string {
	title, err := p.localizer.Localize(&i18n.LocalizeConfig{MessageID: p.Page.Title()})
	if err != nil {
		return p.Page.Title()
	}
	return title
}

// Dispose forwards to the inner page when it has the capability. Wrapping
// must not strip a page's Disposer, and a no-op here is harmless for pages
// without one.
func (p localizedPage) Dispose() error {
	if d, ok := p.Page.(Disposer); ok {
		return d.Dispose()
	}
	return nil
}
