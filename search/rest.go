package search

import (
	"atlas-assets/asset"
	"strconv"
)

type RestModel struct {
	Id          uint64   `json:"-"`
	DisplayName string   `json:"displayName"`
	IconName    string   `json:"iconName,omitempty"`
	Quantity    uint32   `json:"quantity"`
	TypeId      uint32   `json:"typeId"`
	ContainerId uint64   `json:"containerId"`
	Path        []uint64 `json:"path"`
	PathNames   []string `json:"pathNames"`
}

func (r RestModel) GetName() string {
	return "search-results"
}

func (r RestModel) GetID() string {
	return strconv.FormatUint(r.Id, 10)
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.ParseUint(strId, 10, 64)
	if err != nil {
		return err
	}
	r.Id = id
	return nil
}

// TransformWith renders a result with ancestor labels resolved through the
// supplied resolver.
func TransformWith(resolve func(m asset.Model) string) func(r Result) (RestModel, error) {
	return func(r Result) (RestModel, error) {
		path := make([]uint64, 0, len(r.path))
		pathNames := make([]string, 0, len(r.path))
		for _, n := range r.path {
			path = append(path, n.ItemId())
			pathNames = append(pathNames, resolve(n))
		}
		return RestModel{
			Id:          r.matched.ItemId(),
			DisplayName: r.displayName,
			IconName:    r.iconName,
			Quantity:    r.matched.Quantity(),
			TypeId:      r.matched.TypeId(),
			ContainerId: r.container.ItemId(),
			Path:        path,
			PathNames:   pathNames,
		}, nil
	}
}
