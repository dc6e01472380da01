package tui

import (
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestToast_Show(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("Inputs reset")

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}
	if toast.Message() != "Inputs reset" {
		t.Errorf("expected message %q, got %q", "Inputs reset", toast.Message())
	}
	if cmd == nil {
		t.Error("expected Show() to return a dismissal command")
	}
}

func TestToast_DismissHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show("hello")

	toast.Update(toastDismissMsg{id: 1})

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after dismissal")
	}
	if toast.Message() != "" {
		t.Errorf("expected empty message when hidden, got %q", toast.Message())
	}
}

func TestToast_StaleDismissKeepsNewerToast(t *testing.T) {
	toast := NewToast()
	toast.Show("first")
	toast.Show("second")

	toast.Update(toastDismissMsg{id: 1})

	if !toast.IsVisible() {
		t.Fatal("dismissal of a replaced toast must not hide the current one")
	}
	if toast.Message() != "second" {
		t.Errorf("expected %q, got %q", "second", toast.Message())
	}
}

func TestToast_Draw(t *testing.T) {
	toast := NewToast()
	scr := uv.NewScreenBuffer(60, 10)

	toast.Draw(scr, scr.Bounds())
	if strings.TrimSpace(scr.Render()) != "" {
		t.Error("hidden toast should draw nothing")
	}

	toast.Show("Theme: light")
	toast.Draw(scr, scr.Bounds())
	if !strings.Contains(scr.Render(), "Theme: light") {
		t.Errorf("expected rendered toast, got %q", scr.Render())
	}
}
