package registry

import (
	"testing"

	"github.com/vovakirdan/anypang/internal/core"
)

type stubGame struct {
	id, title, desc string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return g.desc }

func TestRegisterAndList(t *testing.T) {
	Register("zz_test_plain", func() Game { return &stubGame{id: "zz_test_plain", title: "Plain"} })
	Register("zz_test_described", func() Game {
		return &describedGame{stubGame{id: "zz_test_described", title: "Described", desc: "one line"}}
	})

	if !Exists("zz_test_plain") || Exists("zz_test_missing") {
		t.Fatal("Exists() disagrees with registrations")
	}

	infos := map[string]GameInfo{}
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID >= info.ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, info.ID)
		}
		infos[info.ID] = info
	}

	tests := []struct {
		id    string
		title string
		desc  string
	}{
		{"zz_test_plain", "Plain", ""},
		{"zz_test_described", "Described", "one line"},
	}
	for _, tc := range tests {
		info, ok := infos[tc.id]
		if !ok {
			t.Errorf("%s missing from List()", tc.id)
			continue
		}
		if info.Title != tc.title || info.Description != tc.desc {
			t.Errorf("%s: got %+v", tc.id, info)
		}
	}

	g, err := Create("zz_test_described")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_test_described" {
		t.Errorf("Create() returned %q", g.ID())
	}
	if _, err := Create("zz_test_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return &stubGame{id: "zz_test_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_test_dup", func() Game { return &stubGame{id: "zz_test_dup"} })
}
