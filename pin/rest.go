package pin

import (
	"strconv"
)

type RestModel struct {
	LocationId uint64 `json:"-"`
	Pinned     bool   `json:"pinned"`
}

func (r RestModel) GetName() string {
	return "pins"
}

func (r RestModel) GetID() string {
	return strconv.FormatUint(r.LocationId, 10)
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.ParseUint(strId, 10, 64)
	if err != nil {
		return err
	}
	r.LocationId = id
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		LocationId: m.locationId,
		Pinned:     true,
	}, nil
}
