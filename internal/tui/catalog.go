package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
	"github.com/mark3labs/partsync/internal/tui/theme"
)

const (
	msgItemAdded    = "Item added."
	msgAddFailed    = "Something went wrong."
	msgNetworkError = "Network or server error."
	msgLoadFailed   = "Failed to load data."
)

// CatalogScreen lists catalog items of one hardware kind and adds new ones.
// Focus 0 is the kind selector, 1..n the form fields, n+1 the submit button.
type CatalogScreen struct {
	ctx     context.Context
	backend Backend

	kind   int
	items  []api.Item
	inputs []textinput.Model
	focus  int
	offset int

	loading    bool
	submitting bool
	loadErr    string
	message    string
	success    bool

	width  int
	height int
}

// NewCatalogScreen creates the catalog screen on the first kind.
func NewCatalogScreen(ctx context.Context, backend Backend) *CatalogScreen {
	c := &CatalogScreen{ctx: ctx, backend: backend, width: 80, height: 24}
	c.resetForm()
	return c
}

// Kind returns the selected hardware kind.
func (c *CatalogScreen) Kind() hardware.Kind {
	return hardware.Kinds[c.kind]
}

// Items returns the loaded items.
func (c *CatalogScreen) Items() []api.Item {
	return c.items
}

// Message returns the feedback of the last add.
func (c *CatalogScreen) Message() string {
	return c.message
}

// LoadError returns the listing error, if any.
func (c *CatalogScreen) LoadError() string {
	return c.loadErr
}

// SetSize updates the available area.
func (c *CatalogScreen) SetSize(width, height int) {
	c.width, c.height = width, height
}

// Init loads the items of the selected kind.
func (c *CatalogScreen) Init() tea.Cmd {
	return c.load()
}

func (c *CatalogScreen) resetForm() {
	fields := c.Kind().Fields()
	c.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		c.inputs[i] = newInput(f, inputWidth)
	}
	c.focus = 0
}

func (c *CatalogScreen) load() tea.Cmd {
	c.loading = true
	c.loadErr = ""
	c.offset = 0
	kind, ctx, backend := c.Kind(), c.ctx, c.backend
	return func() tea.Msg {
		items, err := backend.ListCatalog(ctx, kind)
		return catalogLoadedMsg{Kind: kind, Items: items, Err: err}
	}
}

func (c *CatalogScreen) switchKind(delta int) tea.Cmd {
	n := len(hardware.Kinds)
	c.kind = (c.kind + delta + n) % n
	c.items = nil
	c.message = ""
	c.resetForm()
	return c.load()
}

// Update handles messages for the catalog.
func (c *CatalogScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.Kind != c.Kind() {
			return nil
		}
		c.loading = false
		if msg.Err != nil {
			logger.Warn("catalog: loading %s: %v", msg.Kind, msg.Err)
			c.loadErr = msgLoadFailed
			c.items = nil
			return nil
		}
		c.items = msg.Items
		return nil

	case itemAddedMsg:
		c.submitting = false
		if msg.Kind != c.Kind() {
			return nil
		}
		if msg.Err != nil {
			c.success = false
			c.message = addErrorMessage(msg.Err)
			return nil
		}
		c.success = true
		c.message = msgItemAdded
		c.resetForm()
		return c.load()

	case tea.KeyPressMsg:
		return c.handleKey(msg)
	}
	return c.updateFocusedInput(msg)
}

func addErrorMessage(err error) string {
	if errors.Is(err, api.ErrTransport) {
		return msgNetworkError
	}
	var serr *api.StatusError
	if errors.As(err, &serr) && serr.Message != "" {
		return serr.Message
	}
	return msgAddFailed
}

func (c *CatalogScreen) controls() int {
	return len(c.inputs) + 2
}

func (c *CatalogScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg { return NavigateMsg{To: ScreenWizard} }
	case "tab", "down":
		c.setFocus((c.focus + 1) % c.controls())
		return nil
	case "shift+tab", "up":
		c.setFocus((c.focus + c.controls() - 1) % c.controls())
		return nil
	case "pgdown":
		if c.offset < len(c.items)-1 {
			c.offset++
		}
		return nil
	case "pgup":
		if c.offset > 0 {
			c.offset--
		}
		return nil
	case "ctrl+r":
		return c.load()
	case "enter":
		if c.focus == 0 {
			c.setFocus(1)
			return nil
		}
		return c.submit()
	}

	if c.focus == 0 {
		switch msg.String() {
		case "left", "h":
			return c.switchKind(-1)
		case "right", "l":
			return c.switchKind(1)
		}
		return nil
	}
	return c.updateFocusedInput(msg)
}

func (c *CatalogScreen) submit() tea.Cmd {
	if c.submitting {
		return nil
	}
	fields := make(map[string]string, len(c.inputs))
	for i, name := range c.Kind().Fields() {
		fields[name] = strings.TrimSpace(c.inputs[i].Value())
	}
	c.submitting = true
	c.message = ""
	kind, ctx, backend := c.Kind(), c.ctx, c.backend
	return func() tea.Msg {
		message, err := backend.AddCatalogItem(ctx, kind, fields)
		return itemAddedMsg{Kind: kind, Message: message, Err: err}
	}
}

func (c *CatalogScreen) setFocus(i int) {
	c.focus = i
	for j := range c.inputs {
		if j == i-1 {
			c.inputs[j].Focus()
		} else {
			c.inputs[j].Blur()
		}
	}
}

func (c *CatalogScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	i := c.focus - 1
	if i < 0 || i >= len(c.inputs) {
		return nil
	}
	var cmd tea.Cmd
	c.inputs[i], cmd = c.inputs[i].Update(msg)
	return cmd
}

// View renders the kind selector, item list and add form.
func (c *CatalogScreen) View() string {
	s := theme.Current().S()
	lines := []string{s.Title.Render("Hardware Catalog"), "", c.viewKinds(), ""}

	switch {
	case c.loading:
		lines = append(lines, s.Muted.Render("  Loading..."))
	case c.loadErr != "":
		lines = append(lines, s.Error.Render("  "+c.loadErr), s.Muted.Render("  Press ctrl+r to retry."))
	case len(c.items) == 0:
		lines = append(lines, s.Muted.Render("  No items yet."))
	default:
		lines = append(lines, c.viewItems()...)
	}

	lines = append(lines, "", s.Subtitle.Render("Add "+c.Kind().String()))
	for i, name := range c.Kind().Fields() {
		lines = append(lines, field(name, c.inputs[i], c.focus == i+1))
	}

	if c.message != "" {
		style := s.Error
		if c.success {
			style = s.Success
		}
		lines = append(lines, "", style.Render(c.message))
	}

	btn := Button{Label: "Add Item"}
	switch {
	case c.submitting:
		btn = Button{Label: "Adding...", State: ButtonDisabled}
	case c.focus == c.controls()-1:
		btn.State = ButtonFocused
	}
	lines = append(lines, "", RenderButtons(0, btn), "",
		RenderHintBar(KeyLeftRight, "type", KeyTab, "next field", KeyEnter, "add", KeyPgUpDown, "scroll", KeyEsc, "back"))
	return strings.Join(lines, "\n")
}

func (c *CatalogScreen) viewKinds() string {
	s := theme.Current().S()
	parts := make([]string, 0, len(hardware.Kinds))
	for i, k := range hardware.Kinds {
		label := strings.ToUpper(k.String())
		if i == c.kind {
			if c.focus == 0 {
				parts = append(parts, s.ButtonFocused.Render(label))
			} else {
				parts = append(parts, s.ButtonNormal.Render(label))
			}
			continue
		}
		parts = append(parts, s.Muted.Render(" "+label+" "))
	}
	return strings.Join(parts, " ")
}

func (c *CatalogScreen) viewItems() []string {
	s := theme.Current().S()
	visible := max(c.height-20-len(c.inputs), minVisibleCPUs)
	end := min(c.offset+visible, len(c.items))

	lines := make([]string, 0, end-c.offset+1)
	for _, item := range c.items[c.offset:end] {
		lines = append(lines, s.ListItem.Render(formatItem(c.Kind(), item)))
	}
	if len(c.items) > visible {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("  %d-%d of %d", c.offset+1, end, len(c.items))))
	}
	return lines
}

// formatItem renders an item's id and its form fields in table order,
// followed by any extra columns the backend returned.
func formatItem(kind hardware.Kind, item api.Item) string {
	var parts []string
	if id, ok := item["id"]; ok {
		parts = append(parts, fmt.Sprintf("#%v", id))
	}
	for _, f := range kind.Fields() {
		if v, ok := item[f]; ok && v != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", f, v))
		}
	}
	var extra []string
	for k, v := range item {
		if k != "id" && !kind.HasField(k) && v != nil {
			extra = append(extra, fmt.Sprintf("%s=%v", k, v))
		}
	}
	sort.Strings(extra)
	return strings.Join(append(parts, extra...), "  ")
}
