package devbackend

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/mark3labs/partsync/internal/hardware"
)

const (
	// headroomWatts is reserved for the rest of the system.
	headroomWatts = 100
	maxResults    = 5
)

// Tag texts attached to results.
const (
	TagNoBottleneck   = "No Bottleneck"
	TagPSUOK          = "PSU OK"
	TagPCIeCompatible = "PCIe Compatible"
	TagOverBudget     = "Over Budget"
)

// Recommend ranks gpus for the request. Cards that the PSU cannot power are
// dropped, as are over-budget cards when the budget is strict. The rest are
// ordered within-budget first, then by performance score.
func Recommend(cpu *CPU, gpus []GPU, req hardware.RecommendRequest) []hardware.Recommendation {
	var cpuTDP, cpuScore float64
	if cpu != nil {
		cpuTDP, cpuScore = float64(cpu.TDP), cpu.Score
	}
	slotVersion, slotKnown := parseVersion(req.MoboPCIeVersion)

	type candidate struct {
		gpu        GPU
		overBudget bool
	}
	var picks []candidate
	for _, g := range gpus {
		if float64(req.PSUWattage) < g.TDP+cpuTDP+headroomWatts {
			continue
		}
		over := req.Budget > 0 && g.Price > req.Budget
		if over && req.Strict {
			continue
		}
		picks = append(picks, candidate{gpu: g, overBudget: over})
	}

	slices.SortStableFunc(picks, func(a, b candidate) int {
		if a.overBudget != b.overBudget {
			if a.overBudget {
				return 1
			}
			return -1
		}
		return cmp.Compare(b.gpu.Score, a.gpu.Score)
	})
	if len(picks) > maxResults {
		picks = picks[:maxResults]
	}

	recs := make([]hardware.Recommendation, 0, len(picks))
	for _, p := range picks {
		g := p.gpu
		tags := []string{TagPSUOK}
		if cpu != nil && g.Score <= cpuScore*1.2 {
			tags = append(tags, TagNoBottleneck)
		}
		if v, ok := parseVersion(g.PCIeVersion); !slotKnown || !ok || v <= slotVersion {
			tags = append(tags, TagPCIeCompatible)
		}
		if p.overBudget {
			tags = append(tags, TagOverBudget)
		}
		recs = append(recs, hardware.Recommendation{
			Name:  g.Name,
			VRAM:  hardware.Text(strconv.FormatFloat(g.VRAM, 'f', -1, 64)),
			TDP:   hardware.Number(g.TDP),
			Score: hardware.Number(g.Score),
			Price: hardware.Number(g.Price),
			Image: "/images/gpu/" + slug.Make(g.Name) + ".png",
			Tags:  tags,
		})
	}
	return recs
}

func parseVersion(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
