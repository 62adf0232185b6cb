package tree

import (
	"atlas-assets/asset"
	"atlas-assets/data/assets"
	"fmt"
	"sort"
)

// Location id ranges published by the game data gateway. Anything outside
// them is assumed to be a player-owned structure.
const (
	solarSystemIdFloor   = 30000000
	solarSystemIdCeiling = 33000000
	stationIdFloor       = 60000000
	stationIdCeiling     = 64000000
)

// locationNames accumulates every resolved location attribute needed to
// decorate the forest's roots.
type locationNames struct {
	stations         map[uint64]string
	stationSystems   map[uint64]uint32
	systems          map[uint32]string
	systemRegions    map[uint32]uint32
	systemSecurity   map[uint32]float64
	regions          map[uint32]string
	structures       map[uint64]string
	structureSystems map[uint64]uint32
}

func newLocationNames() *locationNames {
	return &locationNames{
		stations:         make(map[uint64]string),
		stationSystems:   make(map[uint64]uint32),
		systems:          make(map[uint32]string),
		systemRegions:    make(map[uint32]uint32),
		systemSecurity:   make(map[uint32]float64),
		regions:          make(map[uint32]string),
		structures:       make(map[uint64]string),
		structureSystems: make(map[uint64]uint32),
	}
}

func locationTypeOf(s string) asset.LocationType {
	switch s {
	case string(asset.LocationTypeStation):
		return asset.LocationTypeStation
	case string(asset.LocationTypeSolarSystem):
		return asset.LocationTypeSolarSystem
	case string(asset.LocationTypeItem):
		return asset.LocationTypeItem
	default:
		return asset.LocationTypeOther
	}
}

// rootLocationType classifies a top-level location. The first child record's
// reported type wins when it names a station or system outright; otherwise
// the id range decides.
func rootLocationType(locationId uint64, records []assets.Model) asset.LocationType {
	for _, r := range records {
		switch lt := locationTypeOf(r.LocationType()); lt {
		case asset.LocationTypeStation, asset.LocationTypeSolarSystem:
			return lt
		}
	}
	if locationId >= solarSystemIdFloor && locationId < solarSystemIdCeiling {
		return asset.LocationTypeSolarSystem
	}
	if locationId >= stationIdFloor && locationId < stationIdCeiling {
		return asset.LocationTypeStation
	}
	return asset.LocationTypeOther
}

// buildForest links the flat ownership records into trees. A record parents
// under the record whose item id matches its location id; records whose
// location id names no owned item sit at the top level, grouped under one
// synthetic root node per distinct location. A synthetic root reuses the
// location id as its item id and carries type id zero.
func buildForest(records []assets.Model) []asset.Model {
	byId := make(map[uint64]assets.Model, len(records))
	children := make(map[uint64][]assets.Model)
	for _, r := range records {
		byId[r.ItemId()] = r
		children[r.LocationId()] = append(children[r.LocationId()], r)
	}

	var build func(r assets.Model) asset.Model
	build = func(r assets.Model) asset.Model {
		b := asset.NewBuilder(r.ItemId(), r.TypeId(), r.LocationId()).
			SetLocationType(locationTypeOf(r.LocationType())).
			SetLocationFlag(r.LocationFlag()).
			SetQuantity(r.Quantity()).
			SetName(r.Name()).
			SetIconName(r.IconName()).
			SetSingleton(r.IsSingleton()).
			SetBlueprintCopy(r.IsBlueprintCopy())
		if cs, ok := children[r.ItemId()]; ok {
			b.SetItems(make([]asset.Model, 0))
			for _, c := range cs {
				b.AddItem(build(c))
			}
		} else if r.IsContainer() {
			// An empty container is still a container, not a leaf.
			b.SetItems(make([]asset.Model, 0))
		}
		return b.Build()
	}

	var locationIds []uint64
	topLevel := make(map[uint64][]assets.Model)
	for _, r := range records {
		if _, owned := byId[r.LocationId()]; owned {
			continue
		}
		if _, ok := topLevel[r.LocationId()]; !ok {
			locationIds = append(locationIds, r.LocationId())
		}
		topLevel[r.LocationId()] = append(topLevel[r.LocationId()], r)
	}
	sort.Slice(locationIds, func(i, j int) bool { return locationIds[i] < locationIds[j] })

	roots := make([]asset.Model, 0, len(locationIds))
	for _, locationId := range locationIds {
		rb := asset.NewBuilder(locationId, 0, locationId).
			SetLocationType(rootLocationType(locationId, topLevel[locationId])).
			SetItems(make([]asset.Model, 0))
		for _, r := range topLevel[locationId] {
			rb.AddItem(build(r))
		}
		roots = append(roots, rb.Build())
	}
	return roots
}

// decorateRoots applies resolved location names, solar system links, and
// region attribution onto the synthetic roots. Unresolved locations get a
// stable id-based sentinel rather than an empty label.
func decorateRoots(roots []asset.Model, ln *locationNames) []asset.Model {
	out := make([]asset.Model, 0, len(roots))
	for _, r := range roots {
		var name string
		var systemId uint32
		switch r.LocationType() {
		case asset.LocationTypeStation:
			if name = ln.stations[r.LocationId()]; name == "" {
				name = fmt.Sprintf("Station %d", r.LocationId())
			}
			systemId = ln.stationSystems[r.LocationId()]
		case asset.LocationTypeSolarSystem:
			systemId = uint32(r.LocationId())
			if name = ln.systems[systemId]; name == "" {
				name = fmt.Sprintf("Solar System %d", systemId)
			}
		default:
			if name = ln.structures[r.LocationId()]; name == "" {
				name = fmt.Sprintf("Structure %d", r.LocationId())
			}
			systemId = ln.structureSystems[r.LocationId()]
		}
		out = append(out, asset.Clone(r).
			SetName(name).
			SetSystemId(systemId).
			SetRegionId(ln.systemRegions[systemId]).
			SetSecurityStatus(ln.systemSecurity[systemId]).
			Build())
	}
	return out
}

// indexContainers maps item id to node for every node able to hold children.
// Synthetic roots index under their location id.
func indexContainers(roots []asset.Model) map[uint64]asset.Model {
	containers := make(map[uint64]asset.Model)
	var walk func(m asset.Model)
	walk = func(m asset.Model) {
		if m.IsContainer() {
			containers[m.ItemId()] = m
		}
		for _, c := range m.Items() {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return containers
}

// collectTypeIds gathers the distinct non-zero type ids across the forest,
// ascending.
func collectTypeIds(roots []asset.Model) []uint32 {
	seen := make(map[uint32]bool)
	var walk func(m asset.Model)
	walk = func(m asset.Model) {
		if m.TypeId() != 0 {
			seen[m.TypeId()] = true
		}
		for _, c := range m.Items() {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	ids := make([]uint32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func countItems(roots []asset.Model) uint32 {
	var count uint32
	var walk func(m asset.Model)
	walk = func(m asset.Model) {
		count++
		for _, c := range m.Items() {
			walk(c)
		}
	}
	for _, r := range roots {
		for _, c := range r.Items() {
			walk(c)
		}
	}
	return count
}
