package grouping_test

import (
	"atlas-assets/asset"
	"atlas-assets/grouping"
	"fmt"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func typeName(m asset.Model) string {
	if m.Name() != "" {
		return m.Name()
	}
	return fmt.Sprintf("Type %d", m.TypeId())
}

func leaf(itemId uint64, typeId uint32, flag string, quantity uint32) asset.Model {
	return asset.NewBuilder(itemId, typeId, 100).
		SetLocationFlag(flag).
		SetQuantity(quantity).
		Build()
}

func TestGroupMergesStacksByType(t *testing.T) {
	children := []asset.Model{
		leaf(3, 34, "Cargo", 100),
		leaf(1, 34, "Cargo", 50),
		leaf(2, 34, "Cargo", 25),
	}

	sections := grouping.Group(testLogger(), children, typeName)
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Label() != "Cargo" {
		t.Fatalf("Expected Cargo section, got %s", sections[0].Label())
	}
	assets := sections[0].Assets()
	if len(assets) != 1 {
		t.Fatalf("Expected stacks to merge into 1 asset, got %d", len(assets))
	}
	if assets[0].Quantity() != 175 {
		t.Errorf("Expected merged quantity 175, got %d", assets[0].Quantity())
	}
	if assets[0].ItemId() != 1 {
		t.Errorf("Expected merged item id to be the lowest member id, got %d", assets[0].ItemId())
	}
}

func TestGroupDoesNotMergeSingletonsOrBlueprintCopies(t *testing.T) {
	singleton := asset.NewBuilder(10, 587, 100).
		SetLocationFlag("Cargo").
		SetSingleton(true).
		Build()
	bpc := asset.NewBuilder(11, 587, 100).
		SetLocationFlag("Cargo").
		SetBlueprintCopy(true).
		Build()
	children := []asset.Model{
		singleton,
		bpc,
		leaf(12, 587, "Cargo", 1),
		leaf(13, 587, "Cargo", 1),
	}

	sections := grouping.Group(testLogger(), children, typeName)
	assets := sections[0].Assets()
	// Two non-mergeable instances plus one merged stack.
	if len(assets) != 3 {
		t.Fatalf("Expected 3 assets, got %d", len(assets))
	}
	if assets[0].ItemId() != 10 || assets[1].ItemId() != 11 {
		t.Errorf("Expected non-mergeable instances first by item id, got [%d, %d]", assets[0].ItemId(), assets[1].ItemId())
	}
	if assets[2].Quantity() != 2 || assets[2].ItemId() != 12 {
		t.Errorf("Expected merged stack of 2 under item id 12, got quantity %d item id %d", assets[2].Quantity(), assets[2].ItemId())
	}
}

func TestGroupSectionOrdering(t *testing.T) {
	children := []asset.Model{
		leaf(1, 34, "Cargo", 1),
		leaf(2, 2048, "LoSlot1", 1),
		leaf(3, 2959, "DroneBay", 1),
		leaf(4, 2629, "HiSlot4", 1),
		leaf(5, 9999, "Wardrobe", 1),
	}

	sections := grouping.Group(testLogger(), children, typeName)
	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Label())
	}
	expected := []string{"High Slots", "Low Slots", "DroneBay", "Cargo", "Wardrobe"}
	if !reflect.DeepEqual(labels, expected) {
		t.Fatalf("Expected section order %v, got %v", expected, labels)
	}
}

func TestGroupNumberedSlotsCollapseIntoOneSection(t *testing.T) {
	children := []asset.Model{
		leaf(1, 2629, "HiSlot0", 1),
		leaf(2, 2629, "HiSlot7", 1),
		leaf(3, 2301, "MedSlot2", 1),
	}

	sections := grouping.Group(testLogger(), children, typeName)
	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(sections))
	}
	if sections[0].Label() != "High Slots" || sections[1].Label() != "Mid Slots" {
		t.Fatalf("Expected [High Slots, Mid Slots], got [%s, %s]", sections[0].Label(), sections[1].Label())
	}
}

func TestGroupContainersLeadTheirSection(t *testing.T) {
	secure := asset.NewBuilder(20, 3467, 100).
		SetLocationFlag("Cargo").
		SetName("Loot").
		SetItems(nil).
		Build()
	plain := asset.NewBuilder(21, 23, 100).
		SetLocationFlag("Cargo").
		SetName("Wreck Salvage").
		SetItems(nil).
		Build()
	children := []asset.Model{
		leaf(22, 34, "Cargo", 10),
		plain,
		secure,
	}

	sections := grouping.Group(testLogger(), children, typeName)
	assets := sections[0].Assets()
	if len(assets) != 3 {
		t.Fatalf("Expected 3 assets, got %d", len(assets))
	}
	if assets[0].ItemId() != 20 {
		t.Errorf("Expected the dedicated container type first, got item id %d", assets[0].ItemId())
	}
	if assets[1].ItemId() != 21 {
		t.Errorf("Expected the ordinary container second, got item id %d", assets[1].ItemId())
	}
	if assets[2].ItemId() != 22 {
		t.Errorf("Expected the leaf last, got item id %d", assets[2].ItemId())
	}
}

func TestGroupEmptyContainerIsNotMerged(t *testing.T) {
	empty := asset.NewBuilder(30, 3293, 100).
		SetLocationFlag("Cargo").
		SetItems(nil).
		Build()
	children := []asset.Model{
		empty,
		leaf(31, 3293, "Cargo", 1),
		leaf(32, 3293, "Cargo", 1),
	}

	sections := grouping.Group(testLogger(), children, typeName)
	assets := sections[0].Assets()
	if len(assets) != 2 {
		t.Fatalf("Expected the empty container apart from the merged stacks, got %d assets", len(assets))
	}
	if !assets[0].IsContainer() {
		t.Errorf("Expected the container first.")
	}
	if assets[1].Quantity() != 2 {
		t.Errorf("Expected merged quantity 2, got %d", assets[1].Quantity())
	}
}

func TestGroupReportsNameDivergenceAcrossMergedStacks(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	named := asset.NewBuilder(1, 34, 100).
		SetLocationFlag("Cargo").
		SetQuantity(50).
		SetName("First Batch").
		Build()
	divergent := asset.NewBuilder(2, 34, 100).
		SetLocationFlag("Cargo").
		SetQuantity(25).
		SetName("Second Batch").
		Build()

	sections := grouping.Group(l, []asset.Model{named, divergent}, typeName)
	assets := sections[0].Assets()
	if len(assets) != 1 {
		t.Fatalf("Expected the stacks to still merge, got %d assets", len(assets))
	}
	if assets[0].Name() != "First Batch" {
		t.Errorf("Expected the first member's name to win, got %s", assets[0].Name())
	}
	if len(hook.Entries) == 0 {
		t.Fatalf("Expected the divergence to be reported.")
	}

	hook.Reset()
	agreeing := asset.NewBuilder(3, 34, 100).
		SetLocationFlag("Cargo").
		SetQuantity(10).
		SetName("First Batch").
		Build()
	grouping.Group(l, []asset.Model{named, agreeing}, typeName)
	if len(hook.Entries) != 0 {
		t.Errorf("Expected no report when merged members agree.")
	}
}

func TestGroupIsIdempotent(t *testing.T) {
	children := []asset.Model{
		leaf(3, 34, "Cargo", 100),
		leaf(1, 34, "Cargo", 50),
		leaf(4, 35, "DroneBay", 5),
		asset.NewBuilder(5, 648, 100).SetLocationFlag("Cargo").SetSingleton(true).Build(),
	}

	first := grouping.Group(testLogger(), children, typeName)
	second := grouping.Group(testLogger(), children, typeName)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Expected grouping to be stable across invocations.")
	}
}
