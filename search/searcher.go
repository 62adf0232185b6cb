package search

import (
	"atlas-assets/asset"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameResolver resolves a type id to its display name and default icon.
type NameResolver func(typeId uint32) (string, string)

// Search walks every root depth-first and reports each node whose resolved
// type name contains the query as a case-insensitive substring. An empty
// query yields an empty result list, not the whole forest.
func Search(forest []asset.Model, query string, resolve NameResolver) []Result {
	results := make([]Result, 0)
	if query == "" {
		return results
	}
	q := strings.ToLower(query)

	var walk func(m asset.Model, path []asset.Model)
	walk = func(m asset.Model, path []asset.Model) {
		path = append(path, m)
		name, icon := resolve(m.TypeId())
		if strings.Contains(strings.ToLower(name), q) {
			if m.IconName() != "" {
				icon = m.IconName()
			}
			container := path[len(path)-1]
			if len(path) > 1 {
				container = path[len(path)-2]
			}
			cp := make([]asset.Model, len(path))
			copy(cp, path)
			results = append(results, Result{
				matched:     m,
				displayName: name,
				iconName:    icon,
				path:        cp,
				container:   container,
			})
		}
		for _, c := range m.Items() {
			walk(c, path)
		}
	}
	for _, r := range forest {
		walk(r, nil)
	}

	c := collate.New(language.Und)
	sort.SliceStable(results, func(i, j int) bool {
		r := c.CompareString(results[i].displayName, results[j].displayName)
		if r != 0 {
			return r < 0
		}
		return results[i].matched.ItemId() < results[j].matched.ItemId()
	})
	return results
}
