package tui

import (
	"errors"
	"testing"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/tui/testfixtures"
	"github.com/mark3labs/partsync/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedWizard(t *testing.T) (*WizardScreen, *testfixtures.MockBackend) {
	t.Helper()
	backend := testfixtures.NewMockBackend()
	w := NewWizardScreen(testContext(t), backend)
	msg := runOne(t, w.Init())
	require.IsType(t, CPUsLoadedMsg{}, msg)
	w.Update(msg)
	require.Len(t, w.Controller().CPUs(), 3)
	return w, backend
}

func TestWizardScreen_InitLoadsCPUsOnce(t *testing.T) {
	w, backend := loadedWizard(t)

	assert.Nil(t, w.Init(), "a loaded listing is not fetched again")
	assert.Equal(t, 1, backend.Calls("ListCPUs"))
	assert.Contains(t, w.View(), "Ryzen 5 5600X")
}

func TestWizardScreen_LoadFailure(t *testing.T) {
	backend := testfixtures.NewMockBackend()
	backend.CPUsErr = errors.New("connection refused")
	w := NewWizardScreen(testContext(t), backend)

	w.Update(runOne(t, w.Init()))

	view := w.View()
	assert.Contains(t, view, "Failed to load CPUs.")
	assert.Empty(t, w.Controller().CPUs())
}

func TestWizardScreen_RetryAfterLoadFailure(t *testing.T) {
	backend := testfixtures.NewMockBackend()
	backend.CPUsErr = errors.New("down")
	w := NewWizardScreen(testContext(t), backend)
	w.Update(runOne(t, w.Init()))

	backend.CPUsErr = nil
	cmd := w.Update(ctrlKey('r'))
	require.NotNil(t, cmd)
	w.Update(runOne(t, cmd))

	assert.Len(t, w.Controller().CPUs(), 3)
	assert.NotContains(t, w.View(), "Failed to load CPUs.")
}

func TestWizardScreen_FilterAndSelect(t *testing.T) {
	w, _ := loadedWizard(t)

	typeInto(w.Update, "intel")
	assert.Len(t, w.filtered(), 1)
	assert.Len(t, w.Controller().CPUs(), 3, "filtering must not mutate the listing")

	w.Update(keyEnter)

	require.Equal(t, wizard.StepPSU, w.Controller().Step())
	require.NotNil(t, w.Controller().State().CPU)
	assert.Equal(t, 2, w.Controller().State().CPU.ID)
}

func TestWizardScreen_CursorMovesSelection(t *testing.T) {
	w, _ := loadedWizard(t)

	w.Update(keyDown)
	w.Update(keyDown)
	w.Update(keyDown) // clamps at the last row
	w.Update(keyUp)
	w.Update(keyEnter)

	require.Equal(t, wizard.StepPSU, w.Controller().Step())
	assert.Equal(t, 2, w.Controller().State().CPU.ID)
}

func TestWizardScreen_EmptyFilterBlocksAdvance(t *testing.T) {
	w, _ := loadedWizard(t)

	typeInto(w.Update, "zzz")
	w.Update(keyEnter)

	assert.Equal(t, wizard.StepSelectCPU, w.Controller().Step())
	assert.Equal(t, "Please select a CPU", w.Alert())
	assert.Contains(t, w.View(), "No CPUs match.")
}

func TestWizardScreen_PSUStepGuards(t *testing.T) {
	w, _ := loadedWizard(t)
	w.Update(keyEnter)
	require.Equal(t, wizard.StepPSU, w.Controller().Step())

	w.Update(keyEnter)
	assert.Equal(t, "Enter PSU details", w.Alert())
	assert.Equal(t, wizard.StepPSU, w.Controller().Step())

	typeInto(w.Update, "650")
	w.Update(keyEnter)
	assert.Equal(t, wizard.StepPSU, w.Controller().Step(), "a connector is required")

	w.Update(keyTab)
	w.Update(keyTab)
	w.Update(keySpace)
	assert.Equal(t, []hardware.Connector{hardware.Connector8Pin}, w.Controller().State().PSU.Selected())

	w.Update(keyEnter)
	assert.Equal(t, wizard.StepMotherboard, w.Controller().Step())
	assert.Empty(t, w.Alert())
}

func TestWizardScreen_BackKeepsValues(t *testing.T) {
	w, _ := loadedWizard(t)
	w.Update(keyEnter)
	typeInto(w.Update, "750")

	w.Update(keyEsc)
	require.Equal(t, wizard.StepSelectCPU, w.Controller().Step())
	assert.Equal(t, "750", w.Controller().State().PSU.Wattage)

	msg := runOne(t, w.Update(keyEsc))
	assert.Equal(t, NavigateMsg{To: ScreenWelcome}, msg)
}

func TestWizardScreen_SubmitPackagesRequest(t *testing.T) {
	w, _ := loadedWizard(t)

	w.Update(keyEnter) // Ryzen 5 5600X
	typeInto(w.Update, "650")
	w.Update(keyTab)
	w.Update(keySpace)
	w.Update(keyTab)
	w.Update(keySpace)
	w.Update(keyEnter)

	typeInto(w.Update, "B550")
	w.Update(keyTab)
	typeInto(w.Update, "4.0")
	w.Update(keyEnter)
	require.Equal(t, wizard.StepBudget, w.Controller().Step())
	assert.Contains(t, w.View(), "Step 4 of 4")

	typeInto(w.Update, "500")
	w.Update(keyTab)
	w.Update(keySpace)

	msg := runOne(t, w.Update(keyEnter))
	submit, ok := msg.(SubmitMsg)
	require.True(t, ok, "expected SubmitMsg, got %T", msg)
	assert.Equal(t, hardware.RecommendRequest{
		CPUID:           1,
		PSUWattage:      650,
		Connectors:      []string{"6-pin", "8-pin"},
		MoboChipset:     "B550",
		MoboPCIeVersion: "4.0",
		Budget:          500,
		Strict:          true,
	}, submit.Request)

	assert.Nil(t, w.Update(keyEnter), "a submitted wizard does not submit twice")
}

func TestWizardScreen_Reset(t *testing.T) {
	w, _ := loadedWizard(t)
	w.Update(keyEnter)
	typeInto(w.Update, "650")

	w.Reset()

	assert.Equal(t, wizard.StepSelectCPU, w.Controller().Step())
	assert.Nil(t, w.Controller().State().CPU)
	assert.Empty(t, w.wattage.Value())
	assert.Len(t, w.Controller().CPUs(), 3, "reset keeps the fetched listing")
}
