package testfixtures

import (
	"github.com/mark3labs/partsync/internal/api"
	"github.com/mark3labs/partsync/internal/hardware"
)

// CPUs returns a small CPU listing with mixed brands.
func CPUs() []hardware.CPU {
	return []hardware.CPU{
		{ID: 1, Name: "Ryzen 5 5600X", Brand: "AMD", Cores: 6, TDP: 65},
		{ID: 2, Name: "Core i5-12600K", Brand: "Intel", Cores: 10, TDP: 125},
		{ID: 3, Name: "Ryzen 7 7800X3D", Brand: "AMD", Cores: 8, TDP: 120},
	}
}

// Recommendations returns four ranked GPUs with typical tags.
func Recommendations() []hardware.Recommendation {
	return []hardware.Recommendation{
		{Name: "RTX 4070", VRAM: "12", TDP: 200, Score: 88, Price: 549, Image: "/images/gpu/rtx-4070.png",
			Tags: []string{"No Bottleneck", "PSU OK", "PCIe Compatible"}},
		{Name: "RX 7900 XT", VRAM: "20", TDP: 315, Score: 95, Price: 699, Tags: []string{"PSU OK"}},
		{Name: "RTX 4060", VRAM: "8", TDP: 115, Score: 70, Price: 299, Tags: []string{"PSU OK", "Over Budget"}},
		{Name: "Arc A770", VRAM: "16", TDP: 225, Score: 65, Price: 329},
	}
}

// CatalogItems returns a listing as the backend would for kind.
func CatalogItems(kind hardware.Kind) []api.Item {
	switch kind {
	case hardware.KindGPU:
		return []api.Item{
			{"id": float64(1), "name": "RTX 4070", "brand": "NVIDIA", "vram": float64(12)},
		}
	case hardware.KindPSU:
		return []api.Item{
			{"id": float64(1), "wattage": float64(650), "connector_8_pin": float64(2)},
		}
	default:
		return []api.Item{
			{"id": float64(1), "name": "Ryzen 5 5600X", "brand": "AMD"},
			{"id": float64(2), "name": "Core i5-12600K", "brand": "Intel"},
		}
	}
}
