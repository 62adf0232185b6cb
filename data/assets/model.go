package assets

// Model is one raw ownership record as reported by the game data gateway.
type Model struct {
	itemId        uint64
	locationId    uint64
	typeId        uint32
	locationType  string
	locationFlag  string
	quantity      uint32
	name          string
	iconName      string
	singleton     bool
	blueprintCopy bool
	container     bool
}

func (m Model) ItemId() uint64 {
	return m.itemId
}

func (m Model) LocationId() uint64 {
	return m.locationId
}

func (m Model) TypeId() uint32 {
	return m.typeId
}

func (m Model) LocationType() string {
	return m.locationType
}

func (m Model) LocationFlag() string {
	return m.locationFlag
}

func (m Model) Quantity() uint32 {
	return m.quantity
}

func (m Model) Name() string {
	return m.name
}

func (m Model) IconName() string {
	return m.iconName
}

func (m Model) IsSingleton() bool {
	return m.singleton
}

func (m Model) IsBlueprintCopy() bool {
	return m.blueprintCopy
}

// IsContainer reports whether the record's type can hold other items. The
// gateway derives this from the type's category, so an empty container is
// still identifiable from its flat record.
func (m Model) IsContainer() bool {
	return m.container
}

type ModelBuilder struct {
	itemId        uint64
	locationId    uint64
	typeId        uint32
	locationType  string
	locationFlag  string
	quantity      uint32
	name          string
	iconName      string
	singleton     bool
	blueprintCopy bool
	container     bool
}

func NewBuilder(itemId uint64, typeId uint32, locationId uint64) *ModelBuilder {
	return &ModelBuilder{
		itemId:     itemId,
		typeId:     typeId,
		locationId: locationId,
		quantity:   1,
	}
}

func (b *ModelBuilder) SetLocationType(locationType string) *ModelBuilder {
	b.locationType = locationType
	return b
}

func (b *ModelBuilder) SetLocationFlag(locationFlag string) *ModelBuilder {
	b.locationFlag = locationFlag
	return b
}

func (b *ModelBuilder) SetQuantity(quantity uint32) *ModelBuilder {
	b.quantity = quantity
	return b
}

func (b *ModelBuilder) SetName(name string) *ModelBuilder {
	b.name = name
	return b
}

func (b *ModelBuilder) SetIconName(iconName string) *ModelBuilder {
	b.iconName = iconName
	return b
}

func (b *ModelBuilder) SetSingleton(singleton bool) *ModelBuilder {
	b.singleton = singleton
	return b
}

func (b *ModelBuilder) SetBlueprintCopy(blueprintCopy bool) *ModelBuilder {
	b.blueprintCopy = blueprintCopy
	return b
}

func (b *ModelBuilder) SetContainer(container bool) *ModelBuilder {
	b.container = container
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		itemId:        b.itemId,
		locationId:    b.locationId,
		typeId:        b.typeId,
		locationType:  b.locationType,
		locationFlag:  b.locationFlag,
		quantity:      b.quantity,
		name:          b.name,
		iconName:      b.iconName,
		singleton:     b.singleton,
		blueprintCopy: b.blueprintCopy,
		container:     b.container,
	}
}
