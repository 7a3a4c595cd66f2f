package registry

import (
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{id: "test_b"} })
	Register("test_a", func() Game { return stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() reports wrong registrations")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("ID() = %q, expected test_b", g.ID())
	}
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "test_a" || info.ID == "test_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("Title = %q for %s", info.Title, info.ID)
			}
		}
	}
	if Title("test_a") != "Stub test_a" || Title("test_missing") != "test_missing" {
		t.Errorf("Title() = %q, %q", Title("test_a"), Title("test_missing"))
	}
	if len(ids) != 2 || ids[0] != "test_a" {
		t.Errorf("List() = %v, expected sorted [test_a test_b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{id: "test_dup"} })
}
