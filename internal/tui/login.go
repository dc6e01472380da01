package tui

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/partsync/internal/admin"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

// LoginModal collects admin credentials and then the one-time code. The
// flow itself lives in admin.Gate.
type LoginModal struct {
	ctx  context.Context
	gate *admin.Gate

	email    textinput.Model
	password textinput.Model
	code     textinput.Model

	visible bool
	focus   int
	busy    bool
	message string
	width   int
}

// NewLoginModal creates a hidden login modal.
func NewLoginModal(ctx context.Context, gate *admin.Gate) *LoginModal {
	m := &LoginModal{ctx: ctx, gate: gate, width: 80}
	m.resetInputs()
	return m
}

func (m *LoginModal) resetInputs() {
	m.email = newInput("Email", inputWidth)
	m.password = newInput("Password", inputWidth)
	m.password.EchoMode = textinput.EchoPassword
	m.code = newInput("6-digit code", inputWidth)
	m.code.CharLimit = admin.CodeLength
	m.focus, m.busy, m.message = 0, false, ""
}

// Open shows the modal and runs the gate's stored-session check.
func (m *LoginModal) Open() tea.Cmd {
	m.resetInputs()
	m.visible = true
	m.email.Focus()
	ctx, gate := m.ctx, m.gate
	return func() tea.Msg {
		gate.Open(ctx)
		return gateOpenedMsg{}
	}
}

// Close cancels the flow and hides the modal.
func (m *LoginModal) Close() {
	m.gate.Cancel()
	m.visible = false
	m.resetInputs()
}

// IsVisible returns whether the modal is visible.
func (m *LoginModal) IsVisible() bool {
	return m.visible
}

// Message returns the error shown in the modal.
func (m *LoginModal) Message() string {
	return m.message
}

// Busy reports whether a submission is outstanding.
func (m *LoginModal) Busy() bool {
	return m.busy
}

// SetWidth updates the screen width.
func (m *LoginModal) SetWidth(width int) {
	m.width = width
}

// Update handles input and settled submissions.
func (m *LoginModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	switch msg := msg.(type) {
	case gateOpenedMsg:
		return m.afterStep()

	case loginStepMsg:
		if errors.Is(msg.Err, admin.ErrWrongState) {
			// from an attempt abandoned before this one
			return nil
		}
		m.busy = false
		if msg.Err != nil {
			var authErr *admin.AuthError
			if errors.As(msg.Err, &authErr) {
				m.message = authErr.Message
			} else {
				m.message = msg.Err.Error()
			}
			return nil
		}
		return m.afterStep()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			m.Close()
			return nil
		case "tab", "shift+tab":
			if m.gate.State() == admin.AwaitingCredentials {
				m.setFocus(1 - m.focus)
			}
			return nil
		case "enter":
			return m.submit()
		}
	}
	return m.updateFocused(msg)
}

func (m *LoginModal) afterStep() tea.Cmd {
	switch m.gate.State() {
	case admin.Authenticated:
		m.visible = false
		m.resetInputs()
		return func() tea.Msg { return NavigateMsg{To: ScreenCatalog} }
	case admin.AwaitingCode:
		m.message = ""
		m.email.Blur()
		m.password.Blur()
		m.code.Focus()
	}
	return nil
}

func (m *LoginModal) submit() tea.Cmd {
	if m.busy {
		return nil
	}
	ctx, gate := m.ctx, m.gate
	switch gate.State() {
	case admin.AwaitingCredentials:
		email, password := strings.TrimSpace(m.email.Value()), m.password.Value()
		m.busy, m.message = true, ""
		return func() tea.Msg {
			return loginStepMsg{Err: gate.SubmitCredentials(ctx, email, password)}
		}
	case admin.AwaitingCode:
		code := strings.TrimSpace(m.code.Value())
		m.busy, m.message = true, ""
		return func() tea.Msg {
			return loginStepMsg{Err: gate.SubmitCode(ctx, code)}
		}
	}
	return nil
}

func (m *LoginModal) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.password.Blur()
		m.email.Focus()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

func (m *LoginModal) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.gate.State() == admin.AwaitingCode:
		m.code, cmd = m.code.Update(msg)
	case m.focus == 0:
		m.email, cmd = m.email.Update(msg)
	default:
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

// Draw renders the modal centered on screen.
func (m *LoginModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}
	s := theme.Current().S()

	var lines []string
	label := "Login"
	switch m.gate.State() {
	case admin.AwaitingCode:
		lines = append(lines, s.ModalTitle.Render("Enter OTP"), "",
			s.Muted.Render("A code was sent to "+m.gate.Email()), "",
			field("Code", m.code, true))
		label = "Verify"
	case admin.AwaitingCredentials:
		lines = append(lines, s.ModalTitle.Render("Admin Login"), "",
			field("Email", m.email, m.focus == 0), "",
			field("Password", m.password, m.focus == 1))
	default:
		lines = append(lines, s.ModalTitle.Render("Admin Login"), "", s.Muted.Render("Checking saved session..."))
	}

	if m.message != "" {
		lines = append(lines, "", s.Error.Render(m.message))
	}

	btn := Button{Label: label, State: ButtonFocused}
	if m.busy {
		btn = Button{Label: "Please wait...", State: ButtonDisabled}
	}
	lines = append(lines, "", RenderButtons(0, btn, Button{Label: "Cancel"}), "", HintModal())

	drawCentered(scr, area, s.Modal.Width(modalWidth(m.width, 56)).Render(strings.Join(lines, "\n")))
}
