// Package host abstracts the embedded pair-programming tool (aider).
//
// Instead of mutating the tool's prompt state at runtime, the host
// exposes a fixed set of named, mutable prompt slots that are populated
// at construction time and materialized before the tool starts. The
// augmenter package patches these slots; the host never needs to know
// what the patches contain.
package host

import (
	"context"
	"errors"
)

// Prompt slot names. Edit-instruction slots get the SDK prefix
// prepended; help is replaced outright; commit-message gets a suffix.
const (
	SlotEditBlock       = "edit-block"
	SlotWholeFile       = "whole-file"
	SlotEditBlockFenced = "edit-block-fenced"
	SlotUnifiedDiff     = "unified-diff"
	SlotHelp            = "help"
	SlotCommitMessage   = "commit-message"
)

// EditSlots lists the edit-instruction-style slots in patch order.
var EditSlots = []string{SlotEditBlock, SlotWholeFile, SlotEditBlockFenced, SlotUnifiedDiff}

// Slot is a named mutable prompt template on the host tool.
type Slot struct {
	Name string
	Text string
}

// Exchange is one example user/assistant interaction.
type Exchange struct {
	User      string `yaml:"user"`
	Assistant string `yaml:"assistant"`
}

// RunOptions carries everything the host run needs. Env is the complete
// child environment; the host adds nothing from the agent's own process
// state.
type RunOptions struct {
	// Args are forwarded to the tool verbatim.
	Args []string
	// Env is the full environment for the child process.
	Env []string
}

// ErrInterrupted reports that the user ended the session with an
// interrupt. Callers treat it as a clean exit.
var ErrInterrupted = errors.New("session interrupted")

// Host is the embedded AI pair-programming tool.
type Host interface {
	// Slot returns the named prompt slot, or false if this host does
	// not carry it. The returned pointer is live; edits stick.
	Slot(name string) (*Slot, bool)
	// SlotNames lists the slots this host carries.
	SlotNames() []string
	// AppendExamples adds example interactions after the stock ones.
	AppendExamples(examples ...Exchange)
	// Run hands control to the tool until the session ends.
	Run(ctx context.Context, opts RunOptions) error
}
