package devbackend

import (
	"fmt"

	"github.com/mark3labs/partsync/internal/hardware"
	"github.com/mark3labs/partsync/internal/logger"
)

var seedItems = map[hardware.Kind][]map[string]string{
	hardware.KindCPU: {
		{"name": "Ryzen 5 5600X", "brand": "AMD", "model": "100-100000065BOX", "cores": "6", "threads": "12", "tdp": "65", "performance_score": "72"},
		{"name": "Ryzen 7 7800X3D", "brand": "AMD", "model": "100-100000910WOF", "cores": "8", "threads": "16", "tdp": "120", "performance_score": "94"},
		{"name": "Core i5-12400F", "brand": "Intel", "model": "BX8071512400F", "cores": "6", "threads": "12", "tdp": "65", "performance_score": "68"},
		{"name": "Core i7-13700K", "brand": "Intel", "model": "BX8071513700K", "cores": "16", "threads": "24", "tdp": "125", "performance_score": "90"},
		{"name": "Core i3-12100F", "brand": "Intel", "model": "BX8071512100F", "cores": "4", "threads": "8", "tdp": "58", "performance_score": "48"},
	},
	hardware.KindPSU: {
		{"wattage": "550", "connector_6_pin": "1", "connector_8_pin": "1", "connector_12_pin": "0"},
		{"wattage": "750", "connector_6_pin": "2", "connector_8_pin": "2", "connector_12_pin": "1"},
	},
	hardware.KindMotherboard: {
		{"name": "MSI B550 Tomahawk", "chipset": "B550", "pcie_version": "4.0"},
		{"name": "ASUS Prime B660M", "chipset": "B660", "pcie_version": "4.0"},
		{"name": "Gigabyte X670 Aorus", "chipset": "X670", "pcie_version": "5.0"},
	},
	hardware.KindGPU: {
		{"name": "GeForce RTX 4060", "brand": "NVIDIA", "vram": "8", "tdp": "115", "pcie_version": "4.0", "performance_score": "62", "price": "299"},
		{"name": "GeForce RTX 4070 Super", "brand": "NVIDIA", "vram": "12", "tdp": "220", "pcie_version": "4.0", "performance_score": "82", "price": "599"},
		{"name": "GeForce RTX 4090", "brand": "NVIDIA", "vram": "24", "tdp": "450", "pcie_version": "4.0", "performance_score": "100", "price": "1599"},
		{"name": "Radeon RX 7600", "brand": "AMD", "vram": "8", "tdp": "165", "pcie_version": "4.0", "performance_score": "58", "price": "269"},
		{"name": "Radeon RX 7800 XT", "brand": "AMD", "vram": "16", "tdp": "263", "pcie_version": "4.0", "performance_score": "80", "price": "499"},
		{"name": "Arc A750", "brand": "Intel", "vram": "8", "tdp": "225", "pcie_version": "4.0", "performance_score": "50", "price": "199"},
		{"name": "GeForce GTX 1650", "brand": "NVIDIA", "vram": "4", "tdp": "75", "pcie_version": "3.0", "performance_score": "28", "price": "149"},
	},
}

// Seed fills every empty table with sample hardware.
func (c *Catalog) Seed() error {
	for _, kind := range hardware.Kinds {
		n, err := c.Count(kind)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		for _, item := range seedItems[kind] {
			if _, err := c.AddItem(kind, item); err != nil {
				return fmt.Errorf("seeding %s: %w", kind, err)
			}
		}
		logger.Debug("devbackend: seeded %d %s rows", len(seedItems[kind]), kind)
	}
	return nil
}
