package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Description() string                  { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}
	info, ok := Info("zz_stub")
	if !ok {
		t.Fatal("Info should find the registered game")
	}
	if info.Title != "Stub zz_stub" || info.Description != "a stub" {
		t.Errorf("Info() = %+v", info)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	list := List()
	if len(list) == 0 || list[len(list)-1].ID != "zz_stub" {
		t.Errorf("List() should be sorted and include the stub, got %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
