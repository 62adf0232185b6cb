package asset

type LocationType string

const (
	LocationTypeStation     = LocationType("station")
	LocationTypeSolarSystem = LocationType("solar_system")
	LocationTypeItem        = LocationType("item")
	LocationTypeOther       = LocationType("other")
)

// Model is one node of a character's asset tree. A node is a container
// exactly when its items slice is non-nil; an empty container is still a
// container, not a leaf.
type Model struct {
	itemId         uint64
	locationId     uint64
	typeId         uint32
	locationType   LocationType
	locationFlag   string
	quantity       uint32
	name           string
	iconName       string
	singleton      bool
	blueprintCopy  bool
	systemId       uint32
	regionId       uint32
	securityStatus float64
	items          []Model
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

func (m Model) LocationType() LocationType {
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

func (m Model) SystemId() uint32 {
	return m.systemId
}

func (m Model) RegionId() uint32 {
	return m.regionId
}

func (m Model) SecurityStatus() float64 {
	return m.securityStatus
}

func (m Model) Items() []Model {
	return m.items
}

func (m Model) IsContainer() bool {
	return m.items != nil
}

func (m Model) IsLeaf() bool {
	return m.items == nil
}

// Mergeable reports whether the node is an ordinary stackable leaf that may
// be collapsed with same-type siblings. Singletons and blueprint copies are
// individually distinguishable and never merge.
func (m Model) Mergeable() bool {
	return m.IsLeaf() && !m.singleton && !m.blueprintCopy
}

func Clone(m Model) *ModelBuilder {
	return &ModelBuilder{
		itemId:         m.itemId,
		locationId:     m.locationId,
		typeId:         m.typeId,
		locationType:   m.locationType,
		locationFlag:   m.locationFlag,
		quantity:       m.quantity,
		name:           m.name,
		iconName:       m.iconName,
		singleton:      m.singleton,
		blueprintCopy:  m.blueprintCopy,
		systemId:       m.systemId,
		regionId:       m.regionId,
		securityStatus: m.securityStatus,
		items:          m.items,
	}
}

type ModelBuilder struct {
	itemId         uint64
	locationId     uint64
	typeId         uint32
	locationType   LocationType
	locationFlag   string
	quantity       uint32
	name           string
	iconName       string
	singleton      bool
	blueprintCopy  bool
	systemId       uint32
	regionId       uint32
	securityStatus float64
	items          []Model
}

func NewBuilder(itemId uint64, typeId uint32, locationId uint64) *ModelBuilder {
	return &ModelBuilder{
		itemId:     itemId,
		typeId:     typeId,
		locationId: locationId,
		quantity:   1,
	}
}

func (b *ModelBuilder) SetItemId(itemId uint64) *ModelBuilder {
	b.itemId = itemId
	return b
}

func (b *ModelBuilder) SetLocationType(lt LocationType) *ModelBuilder {
	b.locationType = lt
	return b
}

func (b *ModelBuilder) SetLocationFlag(flag string) *ModelBuilder {
	b.locationFlag = flag
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

func (b *ModelBuilder) SetSystemId(systemId uint32) *ModelBuilder {
	b.systemId = systemId
	return b
}

func (b *ModelBuilder) SetRegionId(regionId uint32) *ModelBuilder {
	b.regionId = regionId
	return b
}

func (b *ModelBuilder) SetSecurityStatus(securityStatus float64) *ModelBuilder {
	b.securityStatus = securityStatus
	return b
}

// SetItems marks the node as a container. Passing an empty slice produces an
// empty container; a nil-items builder produces a leaf.
func (b *ModelBuilder) SetItems(items []Model) *ModelBuilder {
	if items == nil {
		items = make([]Model, 0)
	}
	b.items = items
	return b
}

func (b *ModelBuilder) AddItem(item Model) *ModelBuilder {
	if b.items == nil {
		b.items = make([]Model, 0)
	}
	b.items = append(b.items, item)
	return b
}

func (b *ModelBuilder) Build() Model {
	return Model{
		itemId:         b.itemId,
		locationId:     b.locationId,
		typeId:         b.typeId,
		locationType:   b.locationType,
		locationFlag:   b.locationFlag,
		quantity:       b.quantity,
		name:           b.name,
		iconName:       b.iconName,
		singleton:      b.singleton,
		blueprintCopy:  b.blueprintCopy,
		systemId:       b.systemId,
		regionId:       b.regionId,
		securityStatus: b.securityStatus,
		items:          b.items,
	}
}
