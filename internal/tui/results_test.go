package tui

import (
	"testing"

	"github.com/mark3labs/partsync/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsScreen_LabelsInOrder(t *testing.T) {
	r := NewResultsScreen()
	r.SetSize(testfixtures.TestTermWidth, 200)
	r.SetResults(testfixtures.Recommendations())

	cards := r.Cards()
	require.Len(t, cards, 4)
	assert.Equal(t, "Best Value", cards[0].Label)
	assert.Equal(t, "High-End", cards[1].Label)
	assert.Equal(t, "Budget-Friendly", cards[2].Label)
	assert.Equal(t, "Option", cards[3].Label)
	assert.Equal(t, "RTX 4070", cards[0].Name)

	testfixtures.AssertContains(t, r.View(), "Best Value", "RTX 4070", "No Bottleneck", "Over Budget", "/images/gpu/rtx-4070.png")
}

func TestResultsScreen_Empty(t *testing.T) {
	r := NewResultsScreen()
	r.SetResults(nil)

	assert.Empty(t, r.Cards())
	assert.Contains(t, r.View(), "No recommendations found.")
}

func TestResultsScreen_Keys(t *testing.T) {
	r := NewResultsScreen()
	r.SetResults(testfixtures.Recommendations())

	assert.Nil(t, r.Update(keyDown))
	assert.Equal(t, 1, r.offset)
	r.Update(keyUp)
	r.Update(keyUp)
	assert.Equal(t, 0, r.offset)

	assert.Equal(t, RestartMsg{}, runOne(t, r.Update(char('r'))))
	assert.Equal(t, NavigateMsg{To: ScreenWelcome}, runOne(t, r.Update(keyEsc)))
}
