package search

import (
	"atlas-assets/asset"
)

// Result is one concrete matching instance. Identical items are reported
// individually; a result must point at a specific location in the tree.
type Result struct {
	matched     asset.Model
	displayName string
	iconName    string
	path        []asset.Model
	container   asset.Model
}

func (r Result) Matched() asset.Model {
	return r.matched
}

func (r Result) DisplayName() string {
	return r.displayName
}

func (r Result) IconName() string {
	return r.iconName
}

// Path is the ancestor chain from root to the matched node inclusive.
func (r Result) Path() []asset.Model {
	return r.path
}

// Container is the direct holder of the match, or the match itself for a
// root-level hit.
func (r Result) Container() asset.Model {
	return r.container
}
