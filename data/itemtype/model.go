package itemtype

type Model struct {
	id       uint32
	name     string
	iconName string
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) IconName() string {
	return m.iconName
}
