package registry

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) State() core.GameState                { return core.GameState{} }
func (g stubGame) BoardState() core.BoardState          { return core.BoardState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists() should report a registered game")
	}
	if Exists("zz_missing") {
		t.Error("Exists() should be false for unknown IDs")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_stub_b" && info.Title != "Stub zz_stub_b" {
			t.Errorf("title = %q, expected %q", info.Title, "Stub zz_stub_b")
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	created := 0
	Register("zz_counted", func() Game {
		created++
		return &stubGame{id: "zz_counted"}
	})
	if created != 1 {
		t.Fatalf("Register() built %d instances, expected 1 for the title", created)
	}

	a, _ := Create("zz_counted")
	b, _ := Create("zz_counted")
	if a == b {
		t.Error("Create() should return a new instance on every call")
	}

	List()
	if created != 3 {
		t.Errorf("built %d instances, expected List() to use the cached title", created)
	}
}
