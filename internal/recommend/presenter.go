package recommend

import (
	"strings"

	"github.com/mark3labs/partsync/internal/hardware"
)

// Rank labels by result position.
var rankLabels = []string{"Best Value", "High-End", "Budget-Friendly"}

// OptionLabel is used for every position past the named ranks.
const OptionLabel = "Option"

// DefaultBadgeColor is used for tags that match no badge rule.
const DefaultBadgeColor = "#9E9E9E"

// badgeRules are checked in order; the first rule whose text occurs in the
// tag decides the color.
var badgeRules = []struct {
	text  string
	color string
}{
	{"No Bottleneck", "#4CAF50"},
	{"PSU OK", "#2196F3"},
	{"PCIe Compatible", "#FFC107"},
}

// RankLabel returns the label for the result at index i.
func RankLabel(i int) string {
	if i >= 0 && i < len(rankLabels) {
		return rankLabels[i]
	}
	return OptionLabel
}

// BadgeColor returns the hex color for a tag.
func BadgeColor(tag string) string {
	for _, r := range badgeRules {
		if strings.Contains(tag, r.text) {
			return r.color
		}
	}
	return DefaultBadgeColor
}

// Badge is a colored tag.
type Badge struct {
	Text  string
	Color string
}

// Card is a recommendation ready for display.
type Card struct {
	Label  string
	hardware.Recommendation
	Badges []Badge
}

// Present labels the results. Cards are returned in input order.
func Present(recs []hardware.Recommendation) []Card {
	cards := make([]Card, 0, len(recs))
	for i, rec := range recs {
		badges := make([]Badge, 0, len(rec.Tags))
		for _, tag := range rec.Tags {
			badges = append(badges, Badge{Text: tag, Color: BadgeColor(tag)})
		}
		cards = append(cards, Card{
			Label:          RankLabel(i),
			Recommendation: rec,
			Badges:         badges,
		})
	}
	return cards
}
