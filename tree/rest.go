package tree

import (
	"atlas-assets/asset"
	"atlas-assets/grouping"
	"strconv"
)

type RegionRestModel struct {
	RegionId uint32            `json:"regionId"`
	Label    string            `json:"label"`
	Roots    []asset.RestModel `json:"roots"`
}

// RestModel is the tree overview: build state plus the top-level locations,
// pinned first and the rest grouped by region. Roots render shallow; children
// are served per location.
type RestModel struct {
	Id      uint32            `json:"-"`
	Loaded  bool              `json:"loaded"`
	Error   string            `json:"error,omitempty"`
	Pinned  []asset.RestModel `json:"pinned"`
	Regions []RegionRestModel `json:"regions"`
}

func (r RestModel) GetName() string {
	return "asset-trees"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func transformRoot(m asset.Model) (asset.RestModel, error) {
	rm, err := asset.Transform(m)
	if err != nil {
		return asset.RestModel{}, err
	}
	rm.Items = nil
	return rm, nil
}

func transformRoots(ms []asset.Model) ([]asset.RestModel, error) {
	rms := make([]asset.RestModel, 0, len(ms))
	for _, m := range ms {
		rm, err := transformRoot(m)
		if err != nil {
			return nil, err
		}
		rms = append(rms, rm)
	}
	return rms, nil
}

func Transform(characterId uint32, st State, pinned []asset.Model, groups []grouping.RegionGroup) (RestModel, error) {
	pinnedRms, err := transformRoots(pinned)
	if err != nil {
		return RestModel{}, err
	}
	regions := make([]RegionRestModel, 0, len(groups))
	for _, g := range groups {
		roots, err := transformRoots(g.Roots())
		if err != nil {
			return RestModel{}, err
		}
		regions = append(regions, RegionRestModel{
			RegionId: g.RegionId(),
			Label:    g.Label(),
			Roots:    roots,
		})
	}
	rm := RestModel{
		Id:      characterId,
		Loaded:  st.Loaded(),
		Pinned:  pinnedRms,
		Regions: regions,
	}
	if st.Err() != nil {
		rm.Error = st.Err().Error()
	}
	return rm, nil
}
