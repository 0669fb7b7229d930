package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func nilFactory(core.RuntimeConfig) Game { return nil }

func TestRegisterAndList(t *testing.T) {
	Register("test_zeta", "Zeta", nilFactory)
	Register("test_alpha", "Alpha", nilFactory)

	if !Exists("test_alpha") {
		t.Fatal("test_alpha should be registered")
	}

	var ids []string
	for _, v := range List() {
		ids = append(ids, v.ID)
	}
	alpha, zeta := -1, -1
	for i, id := range ids {
		switch id {
		case "test_alpha":
			alpha = i
		case "test_zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() not sorted by id: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "Dup", nilFactory)

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate id")
		}
	}()
	Register("test_dup", "Dup", nilFactory)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_variant", core.DefaultConfig())
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Create() error = %v, expected ErrUnknownVariant", err)
	}
}
