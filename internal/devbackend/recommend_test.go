package devbackend

import (
	"testing"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGPUs = []GPU{
	{ID: 1, Name: "Small Card", TDP: 75, PCIeVersion: "3.0", Score: 30, Price: 150},
	{ID: 2, Name: "Mid Card", TDP: 200, PCIeVersion: "4.0", Score: 70, Price: 400},
	{ID: 3, Name: "Big Card", TDP: 450, PCIeVersion: "5.0", Score: 100, Price: 1600},
}

func names(recs []hardware.Recommendation) []string {
	var out []string
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestRecommend_WattageFilter(t *testing.T) {
	cpu := &CPU{CPU: hardware.CPU{TDP: 65}, Score: 70}

	recs := Recommend(cpu, testGPUs, hardware.RecommendRequest{PSUWattage: 400})
	assert.Equal(t, []string{"Mid Card", "Small Card"}, names(recs))

	recs = Recommend(cpu, testGPUs, hardware.RecommendRequest{PSUWattage: 200})
	assert.Empty(t, recs)
}

func TestRecommend_Budget(t *testing.T) {
	cpu := &CPU{CPU: hardware.CPU{TDP: 65}, Score: 90}
	req := hardware.RecommendRequest{PSUWattage: 1000, Budget: 500}

	recs := Recommend(cpu, testGPUs, req)
	assert.Equal(t, []string{"Mid Card", "Small Card", "Big Card"}, names(recs))
	assert.Contains(t, recs[2].Tags, TagOverBudget)

	req.Strict = true
	recs = Recommend(cpu, testGPUs, req)
	assert.Equal(t, []string{"Mid Card", "Small Card"}, names(recs))
}

func TestRecommend_Tags(t *testing.T) {
	cpu := &CPU{CPU: hardware.CPU{TDP: 65}, Score: 60}
	recs := Recommend(cpu, testGPUs, hardware.RecommendRequest{PSUWattage: 1000, MoboPCIeVersion: "4.0"})
	require.Len(t, recs, 3)

	big, mid, small := recs[0], recs[1], recs[2]
	assert.Equal(t, []string{TagPSUOK}, big.Tags)
	assert.Equal(t, []string{TagPSUOK, TagNoBottleneck, TagPCIeCompatible}, mid.Tags)
	assert.Equal(t, []string{TagPSUOK, TagNoBottleneck, TagPCIeCompatible}, small.Tags)
	assert.Equal(t, "/images/gpu/big-card.png", big.Image)
}

func TestRecommend_Limit(t *testing.T) {
	var gpus []GPU
	for i := 0; i < 8; i++ {
		gpus = append(gpus, GPU{ID: int64(i), Name: "Card", Score: float64(i)})
	}
	recs := Recommend(nil, gpus, hardware.RecommendRequest{PSUWattage: 500})
	require.Len(t, recs, maxResults)
	assert.Equal(t, hardware.Number(7), recs[0].Score)
}
