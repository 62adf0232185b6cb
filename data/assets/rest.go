package assets

import (
	"strconv"
)

type RestModel struct {
	Id            uint64 `json:"-"`
	LocationId    uint64 `json:"locationId"`
	TypeId        uint32 `json:"typeId"`
	LocationType  string `json:"locationType"`
	LocationFlag  string `json:"locationFlag"`
	Quantity      uint32 `json:"quantity"`
	Name          string `json:"name,omitempty"`
	IconName      string `json:"iconName,omitempty"`
	Singleton     bool   `json:"singleton"`
	BlueprintCopy bool   `json:"blueprintCopy,omitempty"`
	Container     bool   `json:"container"`
}

func (r RestModel) GetName() string {
	return "asset-records"
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
	return NewBuilder(rm.Id, rm.TypeId, rm.LocationId).
		SetLocationType(rm.LocationType).
		SetLocationFlag(rm.LocationFlag).
		SetQuantity(rm.Quantity).
		SetName(rm.Name).
		SetIconName(rm.IconName).
		SetSingleton(rm.Singleton).
		SetBlueprintCopy(rm.BlueprintCopy).
		SetContainer(rm.Container).
		Build(), nil
}
