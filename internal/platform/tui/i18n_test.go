package tui

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestCatalogComplete(t *testing.T) {
	for _, loc := range config.SupportedLocales() {
		m, ok := catalog[loc]
		if !ok {
			t.Errorf("no catalog for locale %q", loc)
			continue
		}
		for _, msg := range messages {
			if m[msg] == "" {
				t.Errorf("locale %q is missing %q", loc, msg)
			}
		}
	}
}

func TestTranslateFallback(t *testing.T) {
	if got := T("ru", MsgScore); got != "Счёт" {
		t.Errorf("T(ru, score) = %q", got)
	}
	if got := T("xx", MsgScore); got != "Score" {
		t.Errorf("T(xx, score) = %q, expected English fallback", got)
	}
	if got := T("en", Message("nope")); got != "nope" {
		t.Errorf("T(en, nope) = %q, expected the key itself", got)
	}
}

func TestCauseText(t *testing.T) {
	if got := CauseText("en", core.CauseWall); got != "You hit the wall" {
		t.Errorf("CauseText(wall) = %q", got)
	}
	if got := CauseText("en", core.CauseSelf); got != "You ran into yourself" {
		t.Errorf("CauseText(self) = %q", got)
	}
	if got := CauseText("en", core.CauseNone); got != "" {
		t.Errorf("CauseText(none) = %q, expected empty", got)
	}
}
