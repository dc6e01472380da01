// Package wizard implements the four-step hardware selection flow: the
// accumulated selections, the guarded step transitions and the packaging of
// the final snapshot into a recommendation request.
package wizard

import (
	"fmt"

	"github.com/mark3labs/partsync/internal/hardware"
)

// Step is a position in the wizard.
type Step int

const (
	StepSelectCPU Step = iota + 1
	StepPSU
	StepMotherboard
	StepBudget
	StepSubmitted
)

// LastInputStep is the final step that collects input.
const LastInputStep = StepBudget

var stepTitles = map[Step]string{
	StepSelectCPU:   "Select CPU",
	StepPSU:         "Power Supply",
	StepMotherboard: "Motherboard",
	StepBudget:      "Budget",
	StepSubmitted:   "Submitted",
}

// Title returns the human readable step name.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

func (s Step) String() string {
	return s.Title()
}

// State is the in-progress selection across all steps.
type State struct {
	Step        Step
	CPU         *hardware.CPU
	PSU         hardware.PSU
	Motherboard hardware.Motherboard
	Budget      hardware.Budget
}

func newState() State {
	return State{
		Step: StepSelectCPU,
		PSU:  hardware.PSU{Connectors: make(map[hardware.Connector]bool)},
	}
}

// clone returns a deep copy so callers cannot mutate controller state.
func (s State) clone() State {
	out := s
	if s.CPU != nil {
		cpu := *s.CPU
		out.CPU = &cpu
	}
	out.PSU.Connectors = make(map[hardware.Connector]bool, len(s.PSU.Connectors))
	for k, v := range s.PSU.Connectors {
		out.PSU.Connectors[k] = v
	}
	return out
}
