package grouping

import (
	"atlas-assets/asset"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group arranges the direct children of one location into ordered, labeled
// sections for display. It must be invoked fresh on every request; pin state
// and resolved names can change between invocations.
func Group(l logrus.FieldLogger, children []asset.Model, resolve NameResolver) []Section {
	c := collate.New(language.Und)

	byFamily := make(map[string][]asset.Model)
	var unknown []string
	for _, m := range children {
		fam := NormalizeFlag(m.LocationFlag())
		if _, ok := byFamily[fam]; !ok {
			if _, known := familyRank[fam]; !known {
				unknown = append(unknown, fam)
			}
		}
		byFamily[fam] = append(byFamily[fam], m)
	}
	sort.Strings(unknown)

	sections := make([]Section, 0, len(byFamily))
	for _, fam := range familyOrder {
		if ms, ok := byFamily[fam]; ok {
			sections = append(sections, NewSection(fam, arrange(l, c, ms, resolve)))
		}
	}
	for _, fam := range unknown {
		sections = append(sections, NewSection(fam, arrange(l, c, byFamily[fam], resolve)))
	}
	return sections
}

// arrange orders one family: priority containers, normal containers,
// non-mergeable leaves, then merged leaves.
func arrange(l logrus.FieldLogger, c *collate.Collator, ms []asset.Model, resolve NameResolver) []asset.Model {
	var priority []asset.Model
	var containers []asset.Model
	var unique []asset.Model
	var mergeable []asset.Model
	for _, m := range ms {
		if m.IsContainer() {
			if priorityContainerTypes[m.TypeId()] {
				priority = append(priority, m)
			} else {
				containers = append(containers, m)
			}
		} else if m.Mergeable() {
			mergeable = append(mergeable, m)
		} else {
			unique = append(unique, m)
		}
	}
	merged := mergeByType(l, mergeable)

	byName := func(s []asset.Model) func(i, j int) bool {
		return func(i, j int) bool {
			r := c.CompareString(resolve(s[i]), resolve(s[j]))
			if r != 0 {
				return r < 0
			}
			return s[i].ItemId() < s[j].ItemId()
		}
	}
	sort.SliceStable(priority, byName(priority))
	sort.SliceStable(containers, byName(containers))
	// Non-mergeable leaves order by instance identity; a name sort would be
	// misleading for otherwise-identical type ids.
	sort.SliceStable(unique, func(i, j int) bool { return unique[i].ItemId() < unique[j].ItemId() })
	sort.SliceStable(merged, byName(merged))

	out := make([]asset.Model, 0, len(ms))
	out = append(out, priority...)
	out = append(out, containers...)
	out = append(out, unique...)
	out = append(out, merged...)
	return out
}

// mergeByType collapses stacks sharing a type id into one synthetic node
// carrying the summed quantity, the lowest item id of the group, and the
// first member's name and icon. Same-type stacks should not disagree on
// name or icon; when they do, the divergence is logged and the first member
// still wins. Groups of one pass through unchanged. The synthetic nodes
// exist only for display; they are never persisted.
func mergeByType(l logrus.FieldLogger, ms []asset.Model) []asset.Model {
	var order []uint32
	groups := make(map[uint32][]asset.Model)
	for _, m := range ms {
		if _, ok := groups[m.TypeId()]; !ok {
			order = append(order, m.TypeId())
		}
		groups[m.TypeId()] = append(groups[m.TypeId()], m)
	}

	out := make([]asset.Model, 0, len(order))
	for _, t := range order {
		g := groups[t]
		if len(g) == 1 {
			out = append(out, g[0])
			continue
		}
		minId := g[0].ItemId()
		var total uint32
		for _, m := range g {
			if m.ItemId() < minId {
				minId = m.ItemId()
			}
			total += m.Quantity()
			if m.Name() != g[0].Name() || m.IconName() != g[0].IconName() {
				l.Debugf("Merged stacks of type [%d] disagree on name or icon, keeping item [%d]'s.", t, g[0].ItemId())
			}
		}
		out = append(out, asset.Clone(g[0]).SetItemId(minId).SetQuantity(total).Build())
	}
	return out
}
