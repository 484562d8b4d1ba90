package prompts

import (
	"github.com/runanywhereai/runanywhere-agent/internal/host"
	"github.com/runanywhereai/runanywhere-agent/internal/log"
	"github.com/runanywhereai/runanywhere-agent/internal/ui"
)

// Apply patches the bundle into the host's prompt slots. Every slot is
// best effort: a missing slot logs a warning and the rest still get
// patched. Apply never fails the startup sequence.
func Apply(b Bundle, h host.Host) {
	prefix := b.editPrefix()
	patched := 0

	for _, name := range host.EditSlots {
		slot, ok := h.Slot(name)
		if !ok {
			log.Warn("prompt slot not present on host, skipping", "slot", name)
			continue
		}
		slot.Text = prefix + slot.Text
		patched++
	}

	if slot, ok := h.Slot(host.SlotHelp); ok {
		slot.Text = b.Help
		patched++
	} else {
		log.Warn("prompt slot not present on host, skipping", "slot", host.SlotHelp)
	}

	if slot, ok := h.Slot(host.SlotCommitMessage); ok {
		slot.Text += b.CommitSuffix
		patched++
	} else {
		log.Warn("prompt slot not present on host, skipping", "slot", host.SlotCommitMessage)
	}

	h.AppendExamples(b.Examples...)

	log.Debug("applied prompt bundle", "patched_slots", patched)
	ui.Printf("%s RunAnywhere SDK prompts loaded", ui.OKTag())
}
