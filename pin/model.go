package pin

type Model struct {
	id          uint32
	characterId uint32
	locationId  uint64
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) LocationId() uint64 {
	return m.locationId
}
