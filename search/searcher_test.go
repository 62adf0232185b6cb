package search_test

import (
	"atlas-assets/asset"
	"atlas-assets/search"
	"testing"
)

var typeNames = map[uint32]string{
	587:  "Rifter",
	34:   "Tritanium",
	3467: "Small Secure Container",
}

func resolve(typeId uint32) (string, string) {
	return typeNames[typeId], ""
}

func testForest() []asset.Model {
	trit := asset.NewBuilder(4, 34, 3).SetLocationFlag("Cargo").SetQuantity(100).Build()
	container := asset.NewBuilder(3, 3467, 2).SetLocationFlag("Cargo").AddItem(trit).Build()
	ship := asset.NewBuilder(2, 587, 60000004).SetLocationFlag("Hangar").SetSingleton(true).AddItem(container).Build()
	station := asset.NewBuilder(60000004, 0, 60000004).
		SetLocationType(asset.LocationTypeStation).
		SetName("Jita IV - Moon 4").
		AddItem(ship).
		Build()
	return []asset.Model{station}
}

func TestSearchReportsAncestorPath(t *testing.T) {
	results := search.Search(testForest(), "trit", resolve)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Matched().ItemId() != 4 {
		t.Errorf("Expected item 4 matched, got %d", r.Matched().ItemId())
	}
	path := r.Path()
	if len(path) != 4 {
		t.Fatalf("Expected path of 4 nodes from root to match, got %d", len(path))
	}
	if path[0].ItemId() != 60000004 || path[3].ItemId() != 4 {
		t.Errorf("Expected path to start at the root and end at the match.")
	}
	if r.Container().ItemId() != 3 {
		t.Errorf("Expected the secure container as the direct holder, got %d", r.Container().ItemId())
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	results := search.Search(testForest(), "RIFTER", resolve)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].DisplayName() != "Rifter" {
		t.Errorf("Expected display name from the type index, got %s", results[0].DisplayName())
	}
}

func TestSearchEmptyQueryYieldsNothing(t *testing.T) {
	results := search.Search(testForest(), "", resolve)
	if results == nil {
		t.Fatalf("Expected an empty slice, not nil.")
	}
	if len(results) != 0 {
		t.Fatalf("Expected no results for an empty query, got %d", len(results))
	}
}

func TestSearchNoMatch(t *testing.T) {
	results := search.Search(testForest(), "veldspar", resolve)
	if len(results) != 0 {
		t.Fatalf("Expected no results, got %d", len(results))
	}
}

func TestSearchRootLevelHitIsItsOwnContainer(t *testing.T) {
	lone := asset.NewBuilder(7, 587, 60000004).SetLocationFlag("Hangar").SetSingleton(true).Build()
	results := search.Search([]asset.Model{lone}, "rifter", resolve)
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Container().ItemId() != 7 {
		t.Errorf("Expected a top-level match to reference itself as container.")
	}
}

func TestSearchReportsEachInstance(t *testing.T) {
	a := asset.NewBuilder(10, 587, 60000004).SetLocationFlag("Hangar").SetSingleton(true).Build()
	b := asset.NewBuilder(9, 587, 60000004).SetLocationFlag("Hangar").SetSingleton(true).Build()
	station := asset.NewBuilder(60000004, 0, 60000004).
		SetLocationType(asset.LocationTypeStation).
		AddItem(a).
		AddItem(b).
		Build()

	results := search.Search([]asset.Model{station}, "rifter", resolve)
	if len(results) != 2 {
		t.Fatalf("Expected each instance reported, got %d results", len(results))
	}
	if results[0].Matched().ItemId() != 9 || results[1].Matched().ItemId() != 10 {
		t.Errorf("Expected ties ordered by item id, got [%d, %d]", results[0].Matched().ItemId(), results[1].Matched().ItemId())
	}
}
