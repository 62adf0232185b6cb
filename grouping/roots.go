package grouping

import (
	"atlas-assets/asset"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const UnknownRegionLabel = "Unknown Region"

// SplitRoots partitions the forest's top-level locations into a pinned-first
// section and the remainder grouped by region. The unknown-region bucket
// always sorts last. Derived fresh on every read; no grouping is cached.
func SplitRoots(roots []asset.Model, pinned map[uint64]bool, regionName func(regionId uint32) string, resolve NameResolver) ([]asset.Model, []RegionGroup) {
	c := collate.New(language.Und)

	byName := func(s []asset.Model) func(i, j int) bool {
		return func(i, j int) bool {
			r := c.CompareString(resolve(s[i]), resolve(s[j]))
			if r != 0 {
				return r < 0
			}
			return s[i].ItemId() < s[j].ItemId()
		}
	}

	pinnedRoots := make([]asset.Model, 0)
	var regionIds []uint32
	byRegion := make(map[uint32][]asset.Model)
	for _, r := range roots {
		if pinned[r.LocationId()] {
			pinnedRoots = append(pinnedRoots, r)
			continue
		}
		if _, ok := byRegion[r.RegionId()]; !ok {
			regionIds = append(regionIds, r.RegionId())
		}
		byRegion[r.RegionId()] = append(byRegion[r.RegionId()], r)
	}
	sort.SliceStable(pinnedRoots, byName(pinnedRoots))

	groups := make([]RegionGroup, 0, len(regionIds))
	for _, id := range regionIds {
		rs := byRegion[id]
		sort.SliceStable(rs, byName(rs))
		label := UnknownRegionLabel
		if id != 0 {
			if label = regionName(id); label == "" {
				label = fmt.Sprintf("Region %d", id)
			}
		}
		groups = append(groups, RegionGroup{regionId: id, label: label, roots: rs})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if (groups[i].regionId == 0) != (groups[j].regionId == 0) {
			return groups[j].regionId == 0
		}
		return c.CompareString(groups[i].label, groups[j].label) < 0
	})
	return pinnedRoots, groups
}
