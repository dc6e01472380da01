// Package hardware defines the catalog data model shared by the wizard, the
// backend client and the screens.
package hardware

// CPU is a processor option fetched from the backend listing.
type CPU struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Cores Number `json:"cores"`
	TDP   Number `json:"tdp"`
}

// Connector is a PCIe power connector offered by a PSU.
type Connector string

const (
	Connector6Pin Connector = "6-pin"
	Connector8Pin Connector = "8-pin"
)

// Connectors lists every selectable connector in display order.
var Connectors = []Connector{Connector6Pin, Connector8Pin}

// PSU holds the power supply details entered in the wizard. Wattage is kept
// as typed so that a partially filled form survives back navigation.
type PSU struct {
	Wattage    string
	Connectors map[Connector]bool
}

// Selected returns the enabled connectors in display order.
func (p PSU) Selected() []Connector {
	var out []Connector
	for _, c := range Connectors {
		if p.Connectors[c] {
			out = append(out, c)
		}
	}
	return out
}

// Motherboard holds the board details entered in the wizard.
type Motherboard struct {
	Chipset     string
	PCIeVersion string
}

// Budget holds the spending limit. Strict asks the recommender to exclude
// anything over Amount instead of treating it as a preference.
type Budget struct {
	Amount string
	Strict bool
}

// Recommendation is one ranked GPU entry returned by the recommender.
type Recommendation struct {
	Name  string   `json:"name"`
	VRAM  Text     `json:"vram"`
	TDP   Number   `json:"tdp"`
	Score Number   `json:"score"`
	Price Number   `json:"price"`
	Image string   `json:"image"`
	Tags  []string `json:"tags"`
}

// RecommendRequest is the body posted to the recommendation endpoint.
type RecommendRequest struct {
	CPUID           int      `json:"cpuId"`
	PSUWattage      int      `json:"psuWattage"`
	Connectors      []string `json:"connectors"`
	MoboChipset     string   `json:"moboChipset"`
	MoboPCIeVersion string   `json:"moboPcieVersion"`
	Budget          float64  `json:"budget"`
	Strict          bool     `json:"strict"`
}
