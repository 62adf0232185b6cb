package grouping_test

import (
	"atlas-assets/asset"
	"atlas-assets/grouping"
	"testing"
)

func root(locationId uint64, name string, regionId uint32) asset.Model {
	return asset.NewBuilder(locationId, 0, locationId).
		SetName(name).
		SetRegionId(regionId).
		SetItems(nil).
		Build()
}

func regionNames(names map[uint32]string) func(regionId uint32) string {
	return func(regionId uint32) string {
		return names[regionId]
	}
}

func TestSplitRootsPinnedFirst(t *testing.T) {
	roots := []asset.Model{
		root(60000004, "Jita IV - Moon 4", 10000002),
		root(60008494, "Amarr VIII", 10000043),
		root(1035466617946, "Home Fortizar", 10000002),
	}
	pinned := map[uint64]bool{60008494: true}

	pinnedRoots, groups := grouping.SplitRoots(roots, pinned, regionNames(map[uint32]string{10000002: "The Forge", 10000043: "Domain"}), typeName)
	if len(pinnedRoots) != 1 || pinnedRoots[0].LocationId() != 60008494 {
		t.Fatalf("Expected the pinned station alone in the pinned section.")
	}
	if len(groups) != 1 {
		t.Fatalf("Expected the remaining roots under one region, got %d groups", len(groups))
	}
	if groups[0].Label() != "The Forge" {
		t.Errorf("Expected region label The Forge, got %s", groups[0].Label())
	}
	if len(groups[0].Roots()) != 2 {
		t.Errorf("Expected 2 roots in The Forge, got %d", len(groups[0].Roots()))
	}
	if groups[0].Roots()[0].LocationId() != 1035466617946 {
		t.Errorf("Expected roots ordered by name within the region.")
	}
}

func TestSplitRootsUnknownRegionSortsLast(t *testing.T) {
	roots := []asset.Model{
		root(1035466617946, "Mystery Structure", 0),
		root(60008494, "Amarr VIII", 10000043),
		root(60000004, "Jita IV - Moon 4", 10000002),
	}

	_, groups := grouping.SplitRoots(roots, map[uint64]bool{}, regionNames(map[uint32]string{10000002: "The Forge", 10000043: "Domain"}), typeName)
	if len(groups) != 3 {
		t.Fatalf("Expected 3 region groups, got %d", len(groups))
	}
	if groups[0].Label() != "Domain" || groups[1].Label() != "The Forge" {
		t.Errorf("Expected named regions alphabetical, got [%s, %s]", groups[0].Label(), groups[1].Label())
	}
	if groups[2].Label() != grouping.UnknownRegionLabel {
		t.Errorf("Expected the unknown region bucket last, got %s", groups[2].Label())
	}
}

func TestSplitRootsUnresolvedRegionNameGetsSentinel(t *testing.T) {
	roots := []asset.Model{
		root(60000004, "Jita IV - Moon 4", 10000002),
	}

	_, groups := grouping.SplitRoots(roots, map[uint64]bool{}, regionNames(map[uint32]string{}), typeName)
	if len(groups) != 1 {
		t.Fatalf("Expected 1 region group, got %d", len(groups))
	}
	if groups[0].Label() != "Region 10000002" {
		t.Errorf("Expected a sentinel label for the unresolved region, got %s", groups[0].Label())
	}
}
