package system

type Model struct {
	id             uint32
	name           string
	regionId       uint32
	securityStatus float64
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) RegionId() uint32 {
	return m.regionId
}

func (m Model) SecurityStatus() float64 {
	return m.securityStatus
}
