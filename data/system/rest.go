package system

import (
	"strconv"
)

type RestModel struct {
	Id             uint32  `json:"-"`
	Name           string  `json:"name"`
	RegionId       uint32  `json:"regionId"`
	SecurityStatus float64 `json:"securityStatus"`
}

func (r RestModel) GetName() string {
	return "solar-systems"
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

func Extract(rm RestModel) (Model, error) {
	return Model{
		id:             rm.Id,
		name:           rm.Name,
		regionId:       rm.RegionId,
		securityStatus: rm.SecurityStatus,
	}, nil
}
