package asset

import (
	"strconv"
)

type RestModel struct {
	Id             uint64       `json:"itemId"`
	LocationId     uint64       `json:"locationId"`
	TypeId         uint32       `json:"typeId"`
	LocationType   string       `json:"locationType"`
	LocationFlag   string       `json:"locationFlag"`
	Quantity       uint32       `json:"quantity"`
	Name           string       `json:"name,omitempty"`
	IconName       string       `json:"iconName,omitempty"`
	Singleton      bool         `json:"singleton"`
	BlueprintCopy  bool         `json:"blueprintCopy,omitempty"`
	SystemId       uint32       `json:"systemId,omitempty"`
	RegionId       uint32       `json:"regionId,omitempty"`
	SecurityStatus float64      `json:"securityStatus,omitempty"`
	Items          *[]RestModel `json:"items,omitempty"`
}

func (r RestModel) GetName() string {
	return "assets"
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

// Transform round-trips the container distinction: a leaf has no Items
// pointer, an empty container carries a pointer to an empty slice.
func Transform(m Model) (RestModel, error) {
	rm := RestModel{
		Id:             m.itemId,
		LocationId:     m.locationId,
		TypeId:         m.typeId,
		LocationType:   string(m.locationType),
		LocationFlag:   m.locationFlag,
		Quantity:       m.quantity,
		Name:           m.name,
		IconName:       m.iconName,
		Singleton:      m.singleton,
		BlueprintCopy:  m.blueprintCopy,
		SystemId:       m.systemId,
		RegionId:       m.regionId,
		SecurityStatus: m.securityStatus,
	}
	if m.items != nil {
		items := make([]RestModel, 0, len(m.items))
		for _, c := range m.items {
			crm, err := Transform(c)
			if err != nil {
				return RestModel{}, err
			}
			items = append(items, crm)
		}
		rm.Items = &items
	}
	return rm, nil
}

func Extract(rm RestModel) (Model, error) {
	b := NewBuilder(rm.Id, rm.TypeId, rm.LocationId).
		SetLocationType(LocationType(rm.LocationType)).
		SetLocationFlag(rm.LocationFlag).
		SetQuantity(rm.Quantity).
		SetName(rm.Name).
		SetIconName(rm.IconName).
		SetSingleton(rm.Singleton).
		SetBlueprintCopy(rm.BlueprintCopy).
		SetSystemId(rm.SystemId).
		SetRegionId(rm.RegionId).
		SetSecurityStatus(rm.SecurityStatus)
	if rm.Items != nil {
		items := make([]Model, 0, len(*rm.Items))
		for _, crm := range *rm.Items {
			cm, err := Extract(crm)
			if err != nil {
				return Model{}, err
			}
			items = append(items, cm)
		}
		b.SetItems(items)
	}
	return b.Build(), nil
}
