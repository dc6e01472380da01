package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSUSelectedKeepsDisplayOrder(t *testing.T) {
	psu := PSU{Connectors: map[Connector]bool{Connector8Pin: true, Connector6Pin: true}}
	assert.Equal(t, []Connector{Connector6Pin, Connector8Pin}, psu.Selected())

	psu.Connectors[Connector6Pin] = false
	assert.Equal(t, []Connector{Connector8Pin}, psu.Selected())

	assert.Empty(t, PSU{}.Selected())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("GPU")
	require.NoError(t, err)
	assert.Equal(t, KindGPU, got)

	_, err = ParseKind("ram")
	assert.Error(t, err)
}

func TestKindFields(t *testing.T) {
	assert.Equal(t, []string{"wattage", "connector_6_pin", "connector_8_pin", "connector_12_pin"}, KindPSU.Fields())
	assert.Equal(t, []string{"name", "chipset", "pcie_version"}, KindMotherboard.Fields())
	assert.Len(t, KindCPU.Fields(), 7)
	assert.Len(t, KindGPU.Fields(), 7)

	fields := KindGPU.Fields()
	fields[0] = "mutated"
	assert.Equal(t, "name", KindGPU.Fields()[0], "Fields must return a copy")

	assert.True(t, KindGPU.HasField("price"))
	assert.False(t, KindCPU.HasField("price"))
}
