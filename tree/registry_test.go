package tree_test

import (
	"atlas-assets/asset"
	"atlas-assets/tree"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testState(locationId uint64) tree.State {
	root := asset.NewBuilder(locationId, 0, locationId).
		SetLocationType(asset.LocationTypeStation).
		SetItems(nil).
		Build()
	return tree.NewState(
		[]asset.Model{root},
		map[uint32]tree.NameEntry{},
		map[uint32]string{},
		map[uint64]asset.Model{locationId: root},
	)
}

func TestRegistryLoadGuard(t *testing.T) {
	k := tree.NewKey(uuid.New(), 1)
	r := tree.GetRegistry()

	if !r.BeginLoad(k) {
		t.Fatalf("Expected first load to acquire the guard.")
	}
	if r.BeginLoad(k) {
		t.Fatalf("Expected second load to be refused while one is in flight.")
	}
	r.EndLoad(k)
	if !r.BeginLoad(k) {
		t.Fatalf("Expected the guard to release after EndLoad.")
	}
	r.EndLoad(k)
}

func TestRegistryPublishAndGet(t *testing.T) {
	k := tree.NewKey(uuid.New(), 2)
	r := tree.GetRegistry()

	if _, ok := r.Get(k); ok {
		t.Fatalf("Expected no state before publish.")
	}
	r.Publish(k, testState(60000004))
	st, ok := r.Get(k)
	if !ok || !st.Loaded() {
		t.Fatalf("Expected a loaded state after publish.")
	}
	if len(st.Forest()) != 1 {
		t.Fatalf("Expected the published forest.")
	}
	r.Clear(k)
	if _, ok = r.Get(k); ok {
		t.Fatalf("Expected no state after clear.")
	}
}

func TestRegistryFailRetainsPriorState(t *testing.T) {
	k := tree.NewKey(uuid.New(), 3)
	r := tree.GetRegistry()

	r.Publish(k, testState(60000004))
	r.Fail(k, errors.New("gateway unavailable"))

	st, ok := r.Get(k)
	if !ok {
		t.Fatalf("Expected state to survive a failure.")
	}
	if st.Err() == nil {
		t.Fatalf("Expected the failure to be recorded.")
	}
	if !st.Loaded() || len(st.Forest()) != 1 {
		t.Fatalf("Expected the previously published forest to remain readable.")
	}

	r.Publish(k, testState(60008494))
	st, _ = r.Get(k)
	if st.Err() != nil {
		t.Fatalf("Expected a successful publish to clear the failure.")
	}
	r.Clear(k)
}

func TestStateDisplayNameFallbacks(t *testing.T) {
	st := tree.NewState(
		nil,
		map[uint32]tree.NameEntry{587: tree.NewNameEntry("Rifter", "rifter.png")},
		map[uint32]string{},
		map[uint64]asset.Model{},
	)

	named := asset.NewBuilder(1, 587, 2).SetName("Old Faithful").Build()
	if st.DisplayName(named) != "Old Faithful" {
		t.Errorf("Expected an explicit name to win.")
	}
	typed := asset.NewBuilder(1, 587, 2).Build()
	if st.DisplayName(typed) != "Rifter" {
		t.Errorf("Expected the type name when no explicit name is set.")
	}
	unknown := asset.NewBuilder(1, 99999, 2).Build()
	if st.DisplayName(unknown) != "Type 99999" {
		t.Errorf("Expected a sentinel for an unresolved type, got %s", st.DisplayName(unknown))
	}
}
