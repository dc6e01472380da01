package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
	"github.com/mark3labs/partsync/internal/tui/theme"
	"github.com/mark3labs/partsync/internal/wizard"
)

const (
	inputWidth     = 40
	minVisibleCPUs = 3
)

// WizardScreen renders the four hardware input steps on top of a
// wizard.Controller.
type WizardScreen struct {
	ctx     context.Context
	backend Backend
	ctrl    *wizard.Controller

	search  textinput.Model
	wattage textinput.Model
	chipset textinput.Model
	pcie    textinput.Model
	budget  textinput.Model

	cursor  int // highlighted row of the filtered CPU list
	focus   int // focused control within the current step
	loading bool
	loadErr string
	alert   string

	width  int
	height int
}

// NewWizardScreen creates the wizard on its first step.
func NewWizardScreen(ctx context.Context, backend Backend) *WizardScreen {
	w := &WizardScreen{
		ctx:     ctx,
		backend: backend,
		ctrl:    wizard.New(),
		width:   80,
		height:  24,
	}
	w.resetInputs()
	return w
}

func (w *WizardScreen) resetInputs() {
	w.search = newInput("Search by name or brand...", inputWidth)
	w.wattage = newInput("e.g. 650", inputWidth)
	w.chipset = newInput("e.g. B550", inputWidth)
	w.pcie = newInput("e.g. 4.0", inputWidth)
	w.budget = newInput("e.g. 500", inputWidth)
	w.cursor, w.focus, w.alert = 0, 0, ""
	w.search.Focus()
}

// Init loads the CPU list if it has not been fetched yet.
func (w *WizardScreen) Init() tea.Cmd {
	if len(w.ctrl.CPUs()) > 0 || w.loading {
		return nil
	}
	return w.loadCPUs()
}

func (w *WizardScreen) loadCPUs() tea.Cmd {
	w.loading = true
	w.loadErr = ""
	ctx, backend := w.ctx, w.backend
	return func() tea.Msg {
		cpus, err := backend.ListCPUs(ctx)
		return CPUsLoadedMsg{CPUs: cpus, Err: err}
	}
}

// Reset clears every input and returns to the first step. The fetched CPU
// list is kept.
func (w *WizardScreen) Reset() {
	w.ctrl.Reset()
	w.resetInputs()
}

// Controller exposes the underlying state machine.
func (w *WizardScreen) Controller() *wizard.Controller {
	return w.ctrl
}

// Alert returns the current validation message.
func (w *WizardScreen) Alert() string {
	return w.alert
}

// SetSize updates the available area.
func (w *WizardScreen) SetSize(width, height int) {
	w.width, w.height = width, height
}

// Update handles messages for the wizard.
func (w *WizardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CPUsLoadedMsg:
		w.loading = false
		if msg.Err != nil {
			logger.Warn("wizard: loading cpus: %v", msg.Err)
			w.loadErr = "Failed to load CPUs."
			return nil
		}
		w.ctrl.SetCPUs(msg.CPUs)
		w.cursor = 0
		return nil

	case tea.KeyPressMsg:
		return w.handleKey(msg)
	}
	return w.updateFocusedInput(msg)
}

func (w *WizardScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		w.alert = ""
		if err := w.ctrl.Back(); errors.Is(err, wizard.ErrFirstStep) {
			return func() tea.Msg { return NavigateMsg{To: ScreenWelcome} }
		}
		w.setFocus(0)
		return nil
	case "enter":
		return w.next()
	case "tab":
		w.setFocus((w.focus + 1) % w.controls())
		return nil
	case "shift+tab":
		w.setFocus((w.focus + w.controls() - 1) % w.controls())
		return nil
	}

	switch w.ctrl.Step() {
	case wizard.StepSelectCPU:
		switch msg.String() {
		case "up":
			if w.cursor > 0 {
				w.cursor--
			}
			return nil
		case "down":
			if w.cursor < len(w.filtered())-1 {
				w.cursor++
			}
			return nil
		case "ctrl+r":
			if !w.loading {
				return w.loadCPUs()
			}
			return nil
		}
	case wizard.StepPSU:
		if isSpace(msg) && w.focus > 0 {
			w.ctrl.ToggleConnector(hardware.Connectors[w.focus-1])
			return nil
		}
	case wizard.StepBudget:
		if isSpace(msg) && w.focus == 1 {
			w.ctrl.SetStrict(!w.ctrl.State().Budget.Strict)
			return nil
		}
	}
	return w.updateFocusedInput(msg)
}

// next advances the step, or submits on the last one.
func (w *WizardScreen) next() tea.Cmd {
	if w.ctrl.Step() == wizard.StepSelectCPU {
		cpus := w.filtered()
		if w.cursor < len(cpus) {
			if err := w.ctrl.SelectCPU(cpus[w.cursor].ID); err != nil {
				w.alert = err.Error()
				return nil
			}
		}
	}

	if w.ctrl.Step() == wizard.LastInputStep {
		req, err := w.ctrl.Submit()
		if err != nil {
			w.showError(err)
			return nil
		}
		w.alert = ""
		return func() tea.Msg { return SubmitMsg{Request: req} }
	}

	if err := w.ctrl.Advance(); err != nil {
		w.showError(err)
		return nil
	}
	w.alert = ""
	w.setFocus(0)
	return nil
}

func (w *WizardScreen) showError(err error) {
	var verr *wizard.ValidationError
	if errors.As(err, &verr) {
		w.alert = verr.Message
		return
	}
	if errors.Is(err, wizard.ErrSubmitted) {
		return
	}
	w.alert = err.Error()
}

// controls returns how many focusable controls the current step has.
func (w *WizardScreen) controls() int {
	switch w.ctrl.Step() {
	case wizard.StepPSU:
		return 1 + len(hardware.Connectors)
	case wizard.StepMotherboard, wizard.StepBudget:
		return 2
	default:
		return 1
	}
}

func (w *WizardScreen) setFocus(i int) {
	w.focus = i
	for _, in := range w.inputs() {
		in.Blur()
	}
	if in := w.focusedInput(); in != nil {
		in.Focus()
	}
}

func (w *WizardScreen) inputs() []*textinput.Model {
	return []*textinput.Model{&w.search, &w.wattage, &w.chipset, &w.pcie, &w.budget}
}

func (w *WizardScreen) focusedInput() *textinput.Model {
	switch w.ctrl.Step() {
	case wizard.StepSelectCPU:
		return &w.search
	case wizard.StepPSU:
		if w.focus == 0 {
			return &w.wattage
		}
	case wizard.StepMotherboard:
		if w.focus == 0 {
			return &w.chipset
		}
		return &w.pcie
	case wizard.StepBudget:
		if w.focus == 0 {
			return &w.budget
		}
	}
	return nil
}

// updateFocusedInput forwards msg to the focused input and copies its value
// into the controller.
func (w *WizardScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	in := w.focusedInput()
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	switch in {
	case &w.search:
		if n := len(w.filtered()); w.cursor >= n {
			w.cursor = max(n-1, 0)
		}
	case &w.wattage:
		w.ctrl.SetPSUWattage(in.Value())
	case &w.chipset:
		w.ctrl.SetChipset(in.Value())
	case &w.pcie:
		w.ctrl.SetPCIeVersion(in.Value())
	case &w.budget:
		w.ctrl.SetBudget(in.Value())
	}
	return cmd
}

func (w *WizardScreen) filtered() []hardware.CPU {
	return w.ctrl.Filter(w.search.Value())
}

func isSpace(msg tea.KeyPressMsg) bool {
	k := msg.String()
	return k == "space" || k == " "
}

// View renders the current step.
func (w *WizardScreen) View() string {
	s := theme.Current().S()
	step := w.ctrl.Step()

	var sections []string
	sections = append(sections,
		s.Title.Render(fmt.Sprintf("Step %d of %d: %s", int(step), int(wizard.LastInputStep), step.Title())),
		"",
	)

	switch step {
	case wizard.StepSelectCPU:
		sections = append(sections, w.viewCPUs())
	case wizard.StepPSU:
		st := w.ctrl.State()
		sections = append(sections, field("Wattage", w.wattage, w.focus == 0), "", s.Muted.Render("  Connectors"))
		for i, c := range hardware.Connectors {
			sections = append(sections, checkbox(string(c), st.PSU.Connectors[c], w.focus == i+1))
		}
	case wizard.StepMotherboard:
		sections = append(sections,
			field("Chipset", w.chipset, w.focus == 0), "",
			field("PCIe version", w.pcie, w.focus == 1))
	case wizard.StepBudget:
		st := w.ctrl.State()
		sections = append(sections,
			field("Budget", w.budget, w.focus == 0), "",
			checkbox("Strict budget (exclude anything over budget)", st.Budget.Strict, w.focus == 1))
	}

	if w.alert != "" {
		sections = append(sections, "", s.Error.Render(w.alert))
	}

	nextLabel := "Next →"
	if step == wizard.LastInputStep {
		nextLabel = "Find GPUs"
	}
	sections = append(sections, "", RenderButtons(0, BackNextButtons(true, nextLabel)...), "", w.hints())
	return strings.Join(sections, "\n")
}

func (w *WizardScreen) viewCPUs() string {
	s := theme.Current().S()
	lines := []string{field("Search", w.search, true), ""}

	switch {
	case w.loading:
		lines = append(lines, s.Muted.Render("  Loading CPUs..."))
		return strings.Join(lines, "\n")
	case w.loadErr != "":
		lines = append(lines, s.Error.Render("  "+w.loadErr), s.Muted.Render("  Press ctrl+r to retry."))
		return strings.Join(lines, "\n")
	}

	cpus := w.filtered()
	if len(cpus) == 0 {
		lines = append(lines, s.Muted.Render("  No CPUs match."))
		return strings.Join(lines, "\n")
	}

	visible := max(w.height-16, minVisibleCPUs)
	start := 0
	if w.cursor >= visible {
		start = w.cursor - visible + 1
	}
	end := min(start+visible, len(cpus))

	var selectedID int
	if cpu := w.ctrl.State().CPU; cpu != nil {
		selectedID = cpu.ID
	}
	for i := start; i < end; i++ {
		c := cpus[i]
		text := fmt.Sprintf("%s (%s) • %s cores • %sW", c.Name, c.Brand, c.Cores, c.TDP)
		if c.ID == selectedID {
			text += " ✓"
		}
		if i == w.cursor {
			lines = append(lines, s.ListSelected.Render("› "+text))
		} else {
			lines = append(lines, s.ListItem.Render(text))
		}
	}
	if len(cpus) > visible {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("  %d of %d", w.cursor+1, len(cpus))))
	}
	return strings.Join(lines, "\n")
}

func (w *WizardScreen) hints() string {
	switch w.ctrl.Step() {
	case wizard.StepSelectCPU:
		return RenderHintBar(KeyUpDown, "move", KeyEnter, "select", KeyEsc, "back")
	case wizard.StepPSU, wizard.StepBudget:
		return RenderHintBar(KeyTab, "next field", KeySpace, "toggle", KeyEnter, "next", KeyEsc, "back")
	default:
		return RenderHintBar(KeyTab, "next field", KeyEnter, "next", KeyEsc, "back")
	}
}
