package cache_test

import (
	"atlas-assets/asset"
	"atlas-assets/cache"
	"context"
	"testing"

	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := cache.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testTenant() tenant.Model {
	t, _ := tenant.Create(uuid.New(), "EVE", 1, 0)
	return t
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestForestRoundTripPreservesContainerDistinction(t *testing.T) {
	characterId := uint32(90000001)

	l := testLogger()
	ctx := tenant.WithContext(context.Background(), testTenant())
	db := testDatabase(t)

	leaf := asset.NewBuilder(4, 34, 2).SetLocationFlag("Cargo").SetQuantity(100).Build()
	emptyContainer := asset.NewBuilder(3, 3467, 2).SetLocationFlag("Cargo").SetItems(nil).Build()
	ship := asset.NewBuilder(2, 587, 60000004).SetLocationFlag("Hangar").SetSingleton(true).AddItem(leaf).AddItem(emptyContainer).Build()
	station := asset.NewBuilder(60000004, 0, 60000004).
		SetLocationType(asset.LocationTypeStation).
		SetName("Jita IV - Moon 4").
		SetSystemId(30000142).
		SetRegionId(10000002).
		AddItem(ship).
		Build()

	p := cache.NewProcessor(l, ctx, db)
	if err := p.Save(characterId, []asset.Model{station}); err != nil {
		t.Fatalf("Failed to save forest: %v", err)
	}

	forest, err := p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to load forest: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("Expected 1 root, got %d", len(forest))
	}
	root := forest[0]
	if root.Name() != "Jita IV - Moon 4" || root.RegionId() != 10000002 {
		t.Errorf("Expected root decoration to survive the round trip.")
	}
	if len(root.Items()) != 1 {
		t.Fatalf("Expected 1 ship under the root, got %d", len(root.Items()))
	}
	items := root.Items()[0].Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items in the ship, got %d", len(items))
	}
	if !items[0].IsLeaf() {
		t.Errorf("Expected the stack to stay a leaf.")
	}
	if !items[1].IsContainer() || len(items[1].Items()) != 0 {
		t.Errorf("Expected the empty container to stay a container.")
	}
}

func TestGetByCharacterIdReturnsNilWhenAbsent(t *testing.T) {
	l := testLogger()
	ctx := tenant.WithContext(context.Background(), testTenant())
	db := testDatabase(t)

	forest, err := cache.NewProcessor(l, ctx, db).GetByCharacterId(90000099)
	if err != nil {
		t.Fatalf("Failed to load forest: %v", err)
	}
	if forest != nil {
		t.Fatalf("Expected nil for a character with no saved forest.")
	}
}

func TestSaveReplacesPriorForest(t *testing.T) {
	characterId := uint32(90000002)

	l := testLogger()
	ctx := tenant.WithContext(context.Background(), testTenant())
	db := testDatabase(t)

	p := cache.NewProcessor(l, ctx, db)
	first := asset.NewBuilder(60000004, 0, 60000004).SetLocationType(asset.LocationTypeStation).SetItems(nil).Build()
	if err := p.Save(characterId, []asset.Model{first}); err != nil {
		t.Fatalf("Failed to save forest: %v", err)
	}
	second := asset.NewBuilder(60008494, 0, 60008494).SetLocationType(asset.LocationTypeStation).SetItems(nil).Build()
	if err := p.Save(characterId, []asset.Model{second}); err != nil {
		t.Fatalf("Failed to replace forest: %v", err)
	}

	forest, err := p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to load forest: %v", err)
	}
	if len(forest) != 1 || forest[0].LocationId() != 60008494 {
		t.Fatalf("Expected the replacement forest only.")
	}

	if err = p.DeleteByCharacterId(characterId); err != nil {
		t.Fatalf("Failed to delete forest: %v", err)
	}
	forest, err = p.GetByCharacterId(characterId)
	if err != nil {
		t.Fatalf("Failed to load forest: %v", err)
	}
	if forest != nil {
		t.Fatalf("Expected no forest after deletion.")
	}
}
