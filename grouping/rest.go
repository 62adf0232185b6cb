package grouping

import (
	"atlas-assets/asset"

	"github.com/Chronicle20/atlas-model/model"
)

type RestModel struct {
	Id     string            `json:"-"`
	Label  string            `json:"label"`
	Assets []asset.RestModel `json:"assets"`
}

func (r RestModel) GetName() string {
	return "asset-sections"
}

// GetID returns the section label; labels are unique within one location.
func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Transform(s Section) (RestModel, error) {
	rms, err := model.SliceMap(asset.Transform)(model.FixedProvider(s.assets))(model.ParallelMap())()
	if err != nil {
		return RestModel{}, err
	}
	return RestModel{
		Id:     s.label,
		Label:  s.label,
		Assets: rms,
	}, nil
}
