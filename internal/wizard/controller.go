package wizard

import (
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
)

// Controller owns a single wizard run. It is not safe for concurrent use;
// the owning screen drives it from its update loop.
type Controller struct {
	state State
	cpus  []hardware.CPU
}

// New creates a controller positioned on the CPU step with empty selections.
func New() *Controller {
	return &Controller{state: newState()}
}

// State returns a copy of the current selections.
func (c *Controller) State() State {
	return c.state.clone()
}

// Step returns the current step.
func (c *Controller) Step() Step {
	return c.state.Step
}

// Submitted reports whether the wizard reached its terminal state.
func (c *Controller) Submitted() bool {
	return c.state.Step == StepSubmitted
}

// SetCPUs stores the fetched CPU listing. The slice is copied.
func (c *Controller) SetCPUs(cpus []hardware.CPU) {
	c.cpus = append([]hardware.CPU(nil), cpus...)
}

// CPUs returns the full fetched listing.
func (c *Controller) CPUs() []hardware.CPU {
	return append([]hardware.CPU(nil), c.cpus...)
}

// Filter narrows the fetched listing by query without altering it.
func (c *Controller) Filter(query string) []hardware.CPU {
	return Filter(c.cpus, query)
}

// Filter returns the CPUs whose name or brand contains query,
// case-insensitively, in their original order. A blank query returns
// everything.
func Filter(cpus []hardware.CPU, query string) []hardware.CPU {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]hardware.CPU(nil), cpus...)
	}

	out := make([]hardware.CPU, 0, len(cpus))
	for _, cpu := range cpus {
		if strings.Contains(strings.ToLower(cpu.Name), q) || strings.Contains(strings.ToLower(cpu.Brand), q) {
			out = append(out, cpu)
		}
	}
	return out
}

// SelectCPU selects a fetched CPU by id.
func (c *Controller) SelectCPU(id int) error {
	if c.Submitted() {
		return ErrSubmitted
	}
	for _, cpu := range c.cpus {
		if cpu.ID == id {
			selected := cpu
			c.state.CPU = &selected
			logger.Debug("wizard: selected cpu id=%d name=%s", cpu.ID, cpu.Name)
			return nil
		}
	}
	return ErrUnknownCPU
}

// SetPSUWattage records the wattage exactly as typed.
func (c *Controller) SetPSUWattage(wattage string) {
	if c.Submitted() {
		return
	}
	c.state.PSU.Wattage = wattage
}

// ToggleConnector flips the selection of a PSU connector.
func (c *Controller) ToggleConnector(conn hardware.Connector) {
	if c.Submitted() {
		return
	}
	c.state.PSU.Connectors[conn] = !c.state.PSU.Connectors[conn]
}

// SetChipset records the motherboard chipset.
func (c *Controller) SetChipset(chipset string) {
	if c.Submitted() {
		return
	}
	c.state.Motherboard.Chipset = chipset
}

// SetPCIeVersion records the motherboard PCIe version.
func (c *Controller) SetPCIeVersion(version string) {
	if c.Submitted() {
		return
	}
	c.state.Motherboard.PCIeVersion = version
}

// SetBudget records the budget amount exactly as typed.
func (c *Controller) SetBudget(amount string) {
	if c.Submitted() {
		return
	}
	c.state.Budget.Amount = amount
}

// SetStrict sets strict budget mode.
func (c *Controller) SetStrict(strict bool) {
	if c.Submitted() {
		return
	}
	c.state.Budget.Strict = strict
}

// Advance moves to the next input step if the current step's guard holds.
// On failure the state is unchanged and a *ValidationError is returned.
func (c *Controller) Advance() error {
	switch c.state.Step {
	case StepSubmitted:
		return ErrSubmitted
	case LastInputStep:
		return ErrLastStep
	}

	if err := c.guard(c.state.Step); err != nil {
		logger.Debug("wizard: advance from %s blocked: %v", c.state.Step, err)
		return err
	}

	c.state.Step++
	logger.Debug("wizard: advanced to %s", c.state.Step)
	return nil
}

// Back returns to the previous step, keeping every entered value.
func (c *Controller) Back() error {
	switch c.state.Step {
	case StepSubmitted:
		return ErrSubmitted
	case StepSelectCPU:
		return ErrFirstStep
	}
	c.state.Step--
	logger.Debug("wizard: back to %s", c.state.Step)
	return nil
}

// Submit packages the snapshot into a request and moves to the terminal
// state. It succeeds at most once per controller.
func (c *Controller) Submit() (hardware.RecommendRequest, error) {
	switch c.state.Step {
	case StepSubmitted:
		return hardware.RecommendRequest{}, ErrSubmitted
	case LastInputStep:
	default:
		return hardware.RecommendRequest{}, ErrNotReady
	}

	// Setters are reachable from any step, so earlier guards are rechecked.
	for s := StepSelectCPU; s < LastInputStep; s++ {
		if err := c.guard(s); err != nil {
			return hardware.RecommendRequest{}, err
		}
	}

	req := c.request()
	c.state.Step = StepSubmitted
	logger.Info("wizard: submitted cpu=%d wattage=%d budget=%.2f strict=%t", req.CPUID, req.PSUWattage, req.Budget, req.Strict)
	return req, nil
}

// Reset discards every selection and returns to the CPU step. The fetched
// listing is kept.
func (c *Controller) Reset() {
	c.state = newState()
	logger.Debug("wizard: reset")
}

func (c *Controller) guard(step Step) error {
	st := c.state
	switch step {
	case StepSelectCPU:
		if st.CPU == nil {
			return &ValidationError{Field: "cpu", Message: "Please select a CPU"}
		}
	case StepPSU:
		if _, ok := parseWattage(st.PSU.Wattage); !ok {
			return &ValidationError{Field: "psu.wattage", Message: "Enter PSU details"}
		}
		if len(st.PSU.Selected()) == 0 {
			return &ValidationError{Field: "psu.connectors", Message: "Enter PSU details"}
		}
	case StepMotherboard:
		if strings.TrimSpace(st.Motherboard.PCIeVersion) == "" {
			return &ValidationError{Field: "motherboard.pcieVersion", Message: "Enter motherboard details"}
		}
		if strings.TrimSpace(st.Motherboard.Chipset) == "" {
			return &ValidationError{Field: "motherboard.chipset", Message: "Enter motherboard details"}
		}
	}
	return nil
}

func (c *Controller) request() hardware.RecommendRequest {
	st := c.state
	wattage, _ := parseWattage(st.PSU.Wattage)

	connectors := make([]string, 0, 2)
	for _, conn := range st.PSU.Selected() {
		connectors = append(connectors, string(conn))
	}

	return hardware.RecommendRequest{
		CPUID:           st.CPU.ID,
		PSUWattage:      wattage,
		Connectors:      connectors,
		MoboChipset:     strings.TrimSpace(st.Motherboard.Chipset),
		MoboPCIeVersion: strings.TrimSpace(st.Motherboard.PCIeVersion),
		Budget:          parseBudget(st.Budget.Amount),
		Strict:          st.Budget.Strict,
	}
}

// parseWattage accepts a positive number and truncates it to whole watts.
func parseWattage(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0, false
	}
	return int(f), true
}

// parseBudget returns 0 for an empty or unreadable amount; the budget step
// has no guard.
func parseBudget(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		logger.Warn("wizard: ignoring unreadable budget %q", s)
		return 0
	}
	return f
}
