package grouping_test

import (
	"atlas-assets/grouping"
	"fmt"
	"testing"
)

func TestNormalizeFlagCollapsesNumberedSlots(t *testing.T) {
	families := map[string]string{
		"HiSlot":        "High Slots",
		"MedSlot":       "Mid Slots",
		"LoSlot":        "Low Slots",
		"RigSlot":       "Rig Slots",
		"SubSystemSlot": "Subsystem Slots",
		"FighterTube":   "Fighter Tubes",
	}
	for prefix, label := range families {
		for i := 0; i < 8; i++ {
			flag := fmt.Sprintf("%s%d", prefix, i)
			if got := grouping.NormalizeFlag(flag); got != label {
				t.Errorf("Expected %s to normalize to %s, got %s", flag, label, got)
			}
		}
	}
}

func TestNormalizeFlagPassesUnknownFlagsThrough(t *testing.T) {
	for _, flag := range []string{"Cargo", "DroneBay", "Wardrobe", "SpecializedOreHold", ""} {
		if got := grouping.NormalizeFlag(flag); got != flag {
			t.Errorf("Expected %s to pass through, got %s", flag, got)
		}
	}
}
