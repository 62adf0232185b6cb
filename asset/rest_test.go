package asset_test

import (
	"atlas-assets/asset"
	"encoding/json"
	"testing"
)

func TestRoundTripKeepsLeafAndEmptyContainerApart(t *testing.T) {
	leaf := asset.NewBuilder(4, 34, 2).SetLocationFlag("Cargo").SetQuantity(100).Build()
	empty := asset.NewBuilder(3, 3467, 2).SetLocationFlag("Cargo").SetSingleton(true).SetItems(nil).Build()
	ship := asset.NewBuilder(2, 587, 60000004).
		SetLocationFlag("Hangar").
		SetSingleton(true).
		AddItem(leaf).
		AddItem(empty).
		Build()

	rm, err := asset.Transform(ship)
	if err != nil {
		t.Fatalf("Failed to transform model: %v", err)
	}

	data, err := json.Marshal(rm)
	if err != nil {
		t.Fatalf("Failed to marshal rest model: %v", err)
	}
	var back asset.RestModel
	if err = json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to unmarshal rest model: %v", err)
	}

	m, err := asset.Extract(back)
	if err != nil {
		t.Fatalf("Failed to extract model: %v", err)
	}
	if len(m.Items()) != 2 {
		t.Fatalf("Expected 2 items in the ship, got %d", len(m.Items()))
	}
	if !m.Items()[0].IsLeaf() {
		t.Errorf("Expected the stack to come back a leaf.")
	}
	if !m.Items()[1].IsContainer() {
		t.Errorf("Expected the empty container to come back a container.")
	}
	if len(m.Items()[1].Items()) != 0 {
		t.Errorf("Expected the container to come back empty.")
	}
}

func TestMergeableExcludesSingletonsAndCopies(t *testing.T) {
	stack := asset.NewBuilder(1, 34, 2).SetQuantity(50).Build()
	if !stack.Mergeable() {
		t.Errorf("Expected an ordinary stack to be mergeable.")
	}

	fitted := asset.NewBuilder(2, 2048, 3).SetSingleton(true).Build()
	if fitted.Mergeable() {
		t.Errorf("Expected a singleton to keep its identity.")
	}

	bpc := asset.NewBuilder(3, 999, 4).SetBlueprintCopy(true).Build()
	if bpc.Mergeable() {
		t.Errorf("Expected a blueprint copy to keep its identity.")
	}

	container := asset.NewBuilder(4, 3467, 5).SetItems(nil).Build()
	if container.Mergeable() {
		t.Errorf("Expected a container never to merge.")
	}
}
