package station

import (
	"strconv"
)

type RestModel struct {
	Id       uint64 `json:"-"`
	Name     string `json:"name"`
	SystemId uint32 `json:"systemId"`
}

func (r RestModel) GetName() string {
	return "stations"
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

func Extract(rm RestModel) (Model, error) {
	return Model{
		id:       rm.Id,
		name:     rm.Name,
		systemId: rm.SystemId,
	}, nil
}
