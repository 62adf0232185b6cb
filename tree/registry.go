package tree

import (
	"atlas-assets/asset"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Key struct {
	TenantId    uuid.UUID
	CharacterId uint32
}

func NewKey(tenantId uuid.UUID, characterId uint32) Key {
	return Key{
		TenantId:    tenantId,
		CharacterId: characterId,
	}
}

type NameEntry struct {
	name     string
	iconName string
}

func NewNameEntry(name string, iconName string) NameEntry {
	return NameEntry{
		name:     name,
		iconName: iconName,
	}
}

func (e NameEntry) Name() string {
	return e.name
}

func (e NameEntry) IconName() string {
	return e.iconName
}

// State is one character's published tree with its resolved name indexes. A
// state is immutable once published; a rebuild swaps in a new one wholesale.
type State struct {
	loaded      bool
	forest      []asset.Model
	typeNames   map[uint32]NameEntry
	regionNames map[uint32]string
	containers  map[uint64]asset.Model
	err         error
}

func NewState(forest []asset.Model, typeNames map[uint32]NameEntry, regionNames map[uint32]string, containers map[uint64]asset.Model) State {
	return State{
		loaded:      true,
		forest:      forest,
		typeNames:   typeNames,
		regionNames: regionNames,
		containers:  containers,
	}
}

func (s State) Loaded() bool {
	return s.loaded
}

func (s State) Err() error {
	return s.err
}

func (s State) Forest() []asset.Model {
	return s.forest
}

// Container returns the node holding the given item id, when that node can
// hold children. Roots index under their location id.
func (s State) Container(itemId uint64) (asset.Model, bool) {
	m, ok := s.containers[itemId]
	return m, ok
}

// DisplayName resolves a node's label. Explicit names win over type names;
// a type the store could not resolve falls back to a stable sentinel.
func (s State) DisplayName(m asset.Model) string {
	if m.Name() != "" {
		return m.Name()
	}
	if e, ok := s.typeNames[m.TypeId()]; ok && e.name != "" {
		return e.name
	}
	return fmt.Sprintf("Type %d", m.TypeId())
}

// TypeNameAndIcon returns the resolved type name and default icon, or empty
// strings for a type absent from the index.
func (s State) TypeNameAndIcon(typeId uint32) (string, string) {
	e := s.typeNames[typeId]
	return e.name, e.iconName
}

func (s State) RegionName(regionId uint32) string {
	return s.regionNames[regionId]
}

type Registry struct {
	lock     sync.RWMutex
	states   map[Key]State
	building map[Key]bool
}

var registry *Registry
var once sync.Once

func GetRegistry() *Registry {
	once.Do(func() {
		registry = &Registry{
			states:   make(map[Key]State),
			building: make(map[Key]bool),
		}
	})
	return registry
}

// BeginLoad marks a build in flight for the key. It returns false when one is
// already running; the caller must drop its request rather than queue it.
func (r *Registry) BeginLoad(k Key) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.building[k] {
		return false
	}
	r.building[k] = true
	return true
}

func (r *Registry) EndLoad(k Key) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.building, k)
}

func (r *Registry) Publish(k Key, s State) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.states[k] = s
}

// Fail records a build error while retaining whatever state was last
// published, so readers keep serving the previous tree.
func (r *Registry) Fail(k Key, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	s := r.states[k]
	s.err = err
	r.states[k] = s
}

func (r *Registry) Get(k Key) (State, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	s, ok := r.states[k]
	return s, ok
}

func (r *Registry) Clear(k Key) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.states, k)
}
