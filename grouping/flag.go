package grouping

import (
	"strings"
)

// Numbered sub-slot flags collapse into one family label. Everything else
// passes through under its raw flag string.
var familyPrefixes = []struct {
	prefix string
	label  string
}{
	{"HiSlot", "High Slots"},
	{"MedSlot", "Mid Slots"},
	{"LoSlot", "Low Slots"},
	{"RigSlot", "Rig Slots"},
	{"SubSystemSlot", "Subsystem Slots"},
	{"FighterTube", "Fighter Tubes"},
}

func NormalizeFlag(flag string) string {
	for _, f := range familyPrefixes {
		if strings.HasPrefix(flag, f.prefix) {
			return f.label
		}
	}
	return flag
}

// familyOrder is the canonical section sequence. Families present in the
// data but absent here are appended afterward in alphabetical order of
// their raw flag.
var familyOrder = []string{
	"High Slots",
	"Mid Slots",
	"Low Slots",
	"Rig Slots",
	"Subsystem Slots",
	"FighterBay",
	"Fighter Tubes",
	"DroneBay",
	"Cargo",
	"Hangar",
	"ShipHangar",
	"FleetHangar",
	"CorpSAG1",
	"CorpSAG2",
	"CorpSAG3",
	"CorpSAG4",
	"CorpSAG5",
	"CorpSAG6",
	"CorpSAG7",
	"CorpDeliveries",
	"Deliveries",
	"SpecializedAmmoHold",
	"SpecializedCommandCenterHold",
	"SpecializedFuelBay",
	"SpecializedGasHold",
	"SpecializedIndustrialShipHold",
	"SpecializedLargeShipHold",
	"SpecializedMaterialBay",
	"SpecializedMediumShipHold",
	"SpecializedMineralHold",
	"SpecializedOreHold",
	"SpecializedPlanetaryCommoditiesHold",
	"SpecializedSalvageHold",
	"SpecializedShipHold",
	"SpecializedSmallShipHold",
}

var familyRank = func() map[string]int {
	m := make(map[string]int, len(familyOrder))
	for i, f := range familyOrder {
		m[f] = i
	}
	return m
}()

// Dedicated cargo-container types list ahead of ordinary containers within
// a section.
var priorityContainerTypes = map[uint32]bool{
	3293:  true, // Small Standard Container
	3296:  true, // Medium Standard Container
	3297:  true, // Large Standard Container
	3465:  true, // Large Secure Container
	3466:  true, // Medium Secure Container
	3467:  true, // Small Secure Container
	11488: true, // Huge Secure Container
	11489: true, // Giant Secure Container
	17363: true, // Small Audit Log Secure Container
	17364: true, // Medium Audit Log Secure Container
	17365: true, // Large Audit Log Secure Container
	17366: true, // Station Container
	17367: true, // Station Vault Container
	17368: true, // Station Warehouse Container
	24445: true, // Giant Freight Container
	33003: true, // Enormous Freight Container
	33005: true, // Huge Freight Container
	33007: true, // Large Freight Container
	33009: true, // Medium Freight Container
	33011: true, // Small Freight Container
}
