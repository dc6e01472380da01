package wizard

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"   ", []int{1, 2, 3, 4}},
		{"amd", []int{1, 3}},
		{"AMD", []int{1, 3}},
		{"ryzen", []int{1, 3}},
		{"i5", []int{2}},
		{"core", []int{2, 4}},
		{"x3d", []int{3}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []int
			for _, cpu := range Filter(testCPUs, tt.query) {
				got = append(got, cpu.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterDoesNotAlterListing(t *testing.T) {
	c := New()
	c.SetCPUs(testCPUs)

	_ = c.Filter("intel")
	filtered := c.Filter("amd")
	filtered[0].Name = "mutated"

	assert.Equal(t, testCPUs, c.CPUs())
}

// TestFilterIsOrderedSubsequence checks the filter against a brute-force
// definition over random queries drawn from the listing's own text.
func TestFilterIsOrderedSubsequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	corpus := "Ryzen 5 5600X AMD Core i5-12400F Intel"

	for i := 0; i < 200; i++ {
		start := rng.Intn(len(corpus))
		end := start + rng.Intn(len(corpus)-start+1)
		query := corpus[start:end]
		if rng.Intn(2) == 0 {
			query = strings.ToUpper(query)
		}

		var want []hardware.CPU
		q := strings.ToLower(strings.TrimSpace(query))
		for _, cpu := range testCPUs {
			if q == "" || strings.Contains(strings.ToLower(cpu.Name), q) || strings.Contains(strings.ToLower(cpu.Brand), q) {
				want = append(want, cpu)
			}
		}

		got := Filter(testCPUs, query)
		if len(want) == 0 {
			assert.Empty(t, got, "query %q", query)
			continue
		}
		assert.Equal(t, want, got, "query %q", query)
	}
}
