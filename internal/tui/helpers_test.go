package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/securestore"
	"github.com/mark3labs/partsync/internal/tui/testfixtures"
)

// cmdTimeout bounds how long run waits for a single command. Timer based
// commands longer than this are dropped.
const cmdTimeout = 500 * time.Millisecond

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var (
	keyEnter    = key(tea.KeyEnter)
	keyEsc      = key(tea.KeyEscape)
	keyTab      = key(tea.KeyTab)
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyUp       = key(tea.KeyUp)
	keyDown     = key(tea.KeyDown)
	keyLeft     = key(tea.KeyLeft)
	keyRight    = key(tea.KeyRight)
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// typeInto feeds s one key at a time to update.
func typeInto(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(char(r))
	}
}

// run executes cmd and returns the messages it produced, flattening
// batches. Commands that do not finish within cmdTimeout are skipped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, run(c)...)
	}
	return out
}

// runOne executes cmd and fails unless it yields exactly one message.
func runOne(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := run(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d: %#v", len(msgs), msgs)
	}
	return msgs[0]
}

func newTestGate(backend *testfixtures.MockBackend) (*admin.Gate, admin.SessionStore) {
	store := admin.NewSessionStore(testfixtures.NewMemSecrets(securestore.ErrNotFound))
	return admin.NewGate(backend, store), store
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}
