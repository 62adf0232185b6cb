package structure

type Model struct {
	id       uint64
	name     string
	systemId uint32
}

func (m Model) Id() uint64 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) SystemId() uint32 {
	return m.systemId
}
