package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/runanywhereai/runanywhere-agent/internal/config"
	"github.com/runanywhereai/runanywhere-agent/internal/log"
)

// PromptConfig seeds the named prompt slots of the bundled aider build.
// Each field is a whole template; empty fields mean the host does not
// carry that slot.
type PromptConfig struct {
	EditBlock       string
	WholeFile       string
	EditBlockFenced string
	UnifiedDiff     string
	Help            string
	CommitMessage   string
	Examples        []Exchange
}

// DefaultPromptConfig returns the stock templates the bundled aider
// build starts from. The augmenter prepends or replaces on top of these.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		EditBlock:       stockEditBlock,
		WholeFile:       stockWholeFile,
		EditBlockFenced: stockEditBlockFenced,
		UnifiedDiff:     stockUnifiedDiff,
		Help:            stockHelp,
		CommitMessage:   stockCommitMessage,
	}
}

// Aider runs the bundled aider build with materialized prompt templates.
type Aider struct {
	// Path is the aider binary. Defaults to "aider" on PATH.
	Path string
	// PromptDir is where templates are written before the run.
	// Defaults to ~/.runanywhere/prompts.
	PromptDir string

	slots    map[string]*Slot
	order    []string
	examples []Exchange
}

// NewAider constructs the host with its prompt slots populated from cfg.
func NewAider(cfg PromptConfig) *Aider {
	a := &Aider{
		Path:     "aider",
		slots:    make(map[string]*Slot),
		examples: append([]Exchange(nil), cfg.Examples...),
	}
	for _, s := range []struct {
		name string
		text string
	}{
		{SlotEditBlock, cfg.EditBlock},
		{SlotWholeFile, cfg.WholeFile},
		{SlotEditBlockFenced, cfg.EditBlockFenced},
		{SlotUnifiedDiff, cfg.UnifiedDiff},
		{SlotHelp, cfg.Help},
		{SlotCommitMessage, cfg.CommitMessage},
	} {
		if s.text == "" {
			continue
		}
		a.slots[s.name] = &Slot{Name: s.name, Text: s.text}
		a.order = append(a.order, s.name)
	}
	return a
}

// Slot implements Host.
func (a *Aider) Slot(name string) (*Slot, bool) {
	s, ok := a.slots[name]
	return s, ok
}

// SlotNames implements Host.
func (a *Aider) SlotNames() []string {
	return append([]string(nil), a.order...)
}

// AppendExamples implements Host.
func (a *Aider) AppendExamples(examples ...Exchange) {
	a.examples = append(a.examples, examples...)
}

func (a *Aider) promptDir() string {
	if a.PromptDir != "" {
		return a.PromptDir
	}
	return filepath.Join(config.Dir(), "prompts")
}

// Materialize writes the populated slots and examples to the prompt
// directory the bundled aider build reads at startup.
func (a *Aider) Materialize() (string, error) {
	dir := a.promptDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating prompt dir: %w", err)
	}

	for _, name := range a.order {
		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(a.slots[name].Text), 0o644); err != nil {
			return "", fmt.Errorf("writing prompt slot %s: %w", name, err)
		}
	}

	data, err := yaml.Marshal(a.examples)
	if err != nil {
		return "", fmt.Errorf("encoding examples: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "examples.yaml"), data, 0o644); err != nil {
		return "", fmt.Errorf("writing examples: %w", err)
	}
	return dir, nil
}

// Run materializes the prompts and execs aider with inherited stdio.
// The agent ignores SIGINT for the duration so the interactive session
// owns it; a session ended by interrupt returns ErrInterrupted.
func (a *Aider) Run(ctx context.Context, opts RunOptions) error {
	dir, err := a.Materialize()
	if err != nil {
		return err
	}

	bin, err := exec.LookPath(a.Path)
	if err != nil {
		return fmt.Errorf("aider not found on PATH (install with `pip install aider-chat`): %w", err)
	}

	cmd := exec.Command(bin, opts.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(opts.Env, "RUNANYWHERE_PROMPT_DIR="+dir)

	// The terminal delivers SIGINT to the whole foreground group; let
	// aider decide what to do with it and just wait for the child.
	ignore := make(chan os.Signal, 1)
	signal.Notify(ignore, os.Interrupt)
	defer signal.Stop(ignore)

	log.Debug("starting aider", "bin", bin, "args", opts.Args, "prompt_dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok &&
				status.Signaled() && status.Signal() == syscall.SIGINT {
				return ErrInterrupted
			}
		}
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		return fmt.Errorf("aider exited with an error: %w", err)
	}
	return nil
}
