package devbackend

import (
	"path/filepath"
	"testing"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSeed_Idempotent(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, c.Seed())
	require.NoError(t, c.Seed())

	for _, kind := range hardware.Kinds {
		n, err := c.Count(kind)
		require.NoError(t, err)
		assert.Equal(t, len(seedItems[kind]), n, kind.String())
	}
}

func TestAddAndListItems(t *testing.T) {
	c := newCatalog(t)

	id, err := c.AddItem(hardware.KindPSU, map[string]string{
		"wattage":         "850",
		"connector_8_pin": "3",
		"bogus":           "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	items, err := c.ListItems(hardware.KindPSU)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 850, items[0]["wattage"])
	assert.EqualValues(t, 3, items[0]["connector_8_pin"])
	assert.Nil(t, items[0]["connector_6_pin"])
	assert.NotContains(t, items[0], "bogus")
}

func TestAddItem_RequiresFirstField(t *testing.T) {
	c := newCatalog(t)
	_, err := c.AddItem(hardware.KindGPU, map[string]string{"name": "  ", "price": "10"})
	assert.ErrorIs(t, err, ErrInvalidItem)

	items, err := c.ListItems(hardware.KindGPU)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListCPUs(t *testing.T) {
	c := newCatalog(t)
	require.NoError(t, c.Seed())

	cpus, err := c.ListCPUs()
	require.NoError(t, err)
	require.Len(t, cpus, len(seedItems[hardware.KindCPU]))
	assert.Equal(t, 1, cpus[0].ID)
	assert.Equal(t, "Ryzen 5 5600X", cpus[0].Name)
	assert.Equal(t, hardware.Number(6), cpus[0].Cores)
	assert.Equal(t, hardware.Number(65), cpus[0].TDP)
	assert.Equal(t, 72.0, cpus[0].Score)
}

func TestOpenCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "catalog.db")

	c, err := OpenCatalog(path)
	require.NoError(t, err)
	require.NoError(t, c.Seed())
	require.NoError(t, c.Close())

	c, err = OpenCatalog(path)
	require.NoError(t, err)
	defer c.Close()
	n, err := c.Count(hardware.KindGPU)
	require.NoError(t, err)
	assert.Equal(t, len(seedItems[hardware.KindGPU]), n)
}
