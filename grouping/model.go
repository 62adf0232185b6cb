package grouping

import (
	"atlas-assets/asset"
)

// NameResolver resolves a node's display name for ordering. Implementations
// must fall back to a sentinel for unresolved types rather than fail.
type NameResolver func(m asset.Model) string

type Section struct {
	label  string
	assets []asset.Model
}

func (s Section) Label() string {
	return s.label
}

func (s Section) Assets() []asset.Model {
	return s.assets
}

func NewSection(label string, assets []asset.Model) Section {
	return Section{
		label:  label,
		assets: assets,
	}
}

type RegionGroup struct {
	regionId uint32
	label    string
	roots    []asset.Model
}

func (g RegionGroup) RegionId() uint32 {
	return g.regionId
}

func (g RegionGroup) Label() string {
	return g.label
}

func (g RegionGroup) Roots() []asset.Model {
	return g.roots
}
