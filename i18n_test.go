package hashpages

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

func spanishBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	bundle := NewBundle(language.English)
	if err := bundle.AddMessages(language.Spanish,
		&i18n.Message{ID: "Home", Other: "Inicio"},
		&i18n.Message{ID: "Settings", Other: "Ajustes"},
	); err != nil {
		t.Fatalf("AddMessages failed: %v", err)
	}
	return bundle
}

func TestLocalizeTitle(t *testing.T) {
	bundle := spanishBundle(t)
	localizer := i18n.NewLocalizer(bundle, "es")

	page := Localize(StaticPage{PageID: "home", PageTitle: "Home", PageRoute: "#home"}, localizer)
	if page.Title() != "Inicio" {
		t.Errorf("Title() = %q, want %q", page.Title(), "Inicio")
	}
	// Identity and route pass through untouched.
	if page.ID() != "home" || Normalize(page.Route()) != "#home" {
		t.Errorf("wrapper changed identity: id=%q route=%q", page.ID(), page.Route())
	}
}

func TestLocalizeFallsBackToRawTitle(t *testing.T) {
	bundle := spanishBundle(t)
	localizer := i18n.NewLocalizer(bundle, "es")

	page := Localize(StaticPage{PageID: "about", PageTitle: "About", PageRoute: "#about"}, localizer)
	if page.Title() != "About" {
		t.Errorf("Title() = %q, want raw title fallback", page.Title())
	}
}

func TestLocalizeForwardsDispose(t *testing.T) {
	disposed := false
	inner := StaticPage{
		PageID:      "home",
		PageTitle:   "Home",
		PageRoute:   "#home",
		DisposeFunc: func() error { disposed = true; return nil },
	}
	page := Localize(inner, i18n.NewLocalizer(spanishBundle(t), "es"))

	d, ok := page.(Disposer)
	if !ok {
		t.Fatal("localized page lost the dispose capability")
	}
	if err := d.Dispose(); err != nil {
		t.Fatalf("Dispose failed: %v", err)
	}
	if !disposed {
		t.Error("Dispose was not forwarded to the inner page")
	}
}

func TestLocalizeRegistry(t *testing.T) {
	reg, err := NewRegistry("#home",
		StaticPage{PageID: "home", PageTitle: "Home", PageRoute: "#home", HTML: "<h1>Home</h1>"},
		StaticPage{PageID: "settings", PageTitle: "Settings", PageRoute: "settings", HTML: "<h1>Settings</h1>"},
	)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	localized, err := LocalizeRegistry(reg, spanishBundle(t), "es")
	if err != nil {
		t.Fatalf("LocalizeRegistry failed: %v", err)
	}

	container := &BufferContainer{}
	document := &MemoryDocument{}
	r, err := New(localized, container, document, NewMemorySignal(""), "Demo")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Teardown()

	if document.Title != "Demo | Inicio" {
		t.Errorf("document title = %q, want %q", document.Title, "Demo | Inicio")
	}

	r.Navigate("#settings")
	if document.Title != "Demo | Ajustes" {
		t.Errorf("document title = %q, want %q", document.Title, "Demo | Ajustes")
	}
	if container.HTML() != "<h1>Settings</h1>" {
		t.Errorf("container = %q, want settings markup", container.HTML())
	}
}
