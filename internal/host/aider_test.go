package host

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewAider_SlotsFollowConfig(t *testing.T) {
	t.Run("all slots populated", func(t *testing.T) {
		a := NewAider(DefaultPromptConfig())
		want := []string{
			SlotEditBlock, SlotWholeFile, SlotEditBlockFenced,
			SlotUnifiedDiff, SlotHelp, SlotCommitMessage,
		}
		for _, name := range want {
			if _, ok := a.Slot(name); !ok {
				t.Errorf("slot %s missing", name)
			}
		}
		if got := a.SlotNames(); len(got) != len(want) {
			t.Errorf("SlotNames() = %v", got)
		}
	})

	t.Run("empty fields drop the slot", func(t *testing.T) {
		cfg := DefaultPromptConfig()
		cfg.UnifiedDiff = ""
		a := NewAider(cfg)
		if _, ok := a.Slot(SlotUnifiedDiff); ok {
			t.Error("empty template should not create a slot")
		}
		if _, ok := a.Slot(SlotEditBlock); !ok {
			t.Error("other slots should survive")
		}
	})
}

func TestAider_SlotEditsStick(t *testing.T) {
	a := NewAider(DefaultPromptConfig())
	s, ok := a.Slot(SlotHelp)
	if !ok {
		t.Fatal("help slot missing")
	}
	s.Text = "replaced help text"

	again, _ := a.Slot(SlotHelp)
	if again.Text != "replaced help text" {
		t.Errorf("slot edit lost, got %q", again.Text)
	}
}

func TestAider_Materialize(t *testing.T) {
	cfg := DefaultPromptConfig()
	cfg.Examples = []Exchange{{User: "q", Assistant: "a"}}
	a := NewAider(cfg)
	a.PromptDir = t.TempDir()

	s, _ := a.Slot(SlotEditBlock)
	s.Text = "PATCHED\n" + s.Text
	a.AppendExamples(Exchange{User: "q2", Assistant: "a2"})

	dir, err := a.Materialize()
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SlotEditBlock+".md"))
	if err != nil {
		t.Fatalf("slot file: %v", err)
	}
	if !strings.HasPrefix(string(data), "PATCHED\n") {
		t.Errorf("materialized slot should carry the patch, got %q", string(data)[:40])
	}

	raw, err := os.ReadFile(filepath.Join(dir, "examples.yaml"))
	if err != nil {
		t.Fatalf("examples file: %v", err)
	}
	var examples []Exchange
	if err := yaml.Unmarshal(raw, &examples); err != nil {
		t.Fatalf("examples yaml: %v", err)
	}
	if len(examples) != 2 || examples[1].User != "q2" {
		t.Errorf("expected seeded plus appended examples, got %+v", examples)
	}
}
