package hardware

import (
	"fmt"
	"strings"
)

// Kind is a hardware catalog type managed from the admin screen.
type Kind string

const (
	KindCPU         Kind = "cpu"
	KindPSU         Kind = "psu"
	KindMotherboard Kind = "motherboard"
	KindGPU         Kind = "gpu"
)

// Kinds lists the catalog types in selector order.
var Kinds = []Kind{KindCPU, KindPSU, KindMotherboard, KindGPU}

var kindFields = map[Kind][]string{
	KindCPU:         {"name", "brand", "model", "cores", "threads", "tdp", "performance_score"},
	KindPSU:         {"wattage", "connector_6_pin", "connector_8_pin", "connector_12_pin"},
	KindMotherboard: {"name", "chipset", "pcie_version"},
	KindGPU:         {"name", "brand", "vram", "tdp", "pcie_version", "performance_score", "price"},
}

// ParseKind converts a user supplied type name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kindFields[k]; !ok {
		return "", fmt.Errorf("unknown hardware type %q (want cpu, psu, motherboard or gpu)", s)
	}
	return k, nil
}

// Fields returns the form fields for the kind, in display order.
// The returned slice is a copy.
func (k Kind) Fields() []string {
	fields := kindFields[k]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// HasField reports whether name is part of the kind's form.
func (k Kind) HasField(name string) bool {
	for _, f := range kindFields[k] {
		if f == name {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
