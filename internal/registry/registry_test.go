package registry

import (
	"testing"

	"github.com/vovakirdan/nibbles/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                { return g.id }
func (g *stubGame) Title() string                             { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                  {}
func (g *stubGame) Resize(int, int)                           {}
func (g *stubGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                       {}
func (g *stubGame) State() core.GameState                     { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create(stub-b) error = %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List() = %v, expected sorted stub-a, stub-b", ids)
	}
	if List()[0].Title != "Stub stub-a" {
		t.Errorf("title = %q", List()[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
