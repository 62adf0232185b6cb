package tree

import (
	"atlas-assets/asset"
	"atlas-assets/cache"
	"atlas-assets/data/assets"
	"atlas-assets/data/itemtype"
	"atlas-assets/data/region"
	"atlas-assets/data/station"
	"atlas-assets/data/structure"
	"atlas-assets/data/system"
	"atlas-assets/grouping"
	"atlas-assets/pin"
	"atlas-assets/search"
	"context"
	"errors"
	"sort"

	tree2 "atlas-assets/kafka/message/tree"
	tree3 "atlas-assets/kafka/producer/tree"

	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/producer"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// nameBatchSize is how many type ids one name lookup carries.
const nameBatchSize = 200

var ErrBuildInProgress = errors.New("build already in progress")
var ErrNotLoaded = errors.New("asset tree not loaded")
var ErrUnknownLocation = errors.New("unknown location")

type Processor struct {
	l   logrus.FieldLogger
	ctx context.Context
	db  *gorm.DB
	t   tenant.Model

	assetsProcessor    assets.Processor
	typeProcessor      itemtype.Processor
	stationProcessor   station.Processor
	systemProcessor    system.Processor
	regionProcessor    region.Processor
	structureProcessor structure.Processor
	cacheProcessor     cache.Processor
	pinProcessor       *pin.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	return &Processor{
		l:                  l,
		ctx:                ctx,
		db:                 db,
		t:                  tenant.MustFromContext(ctx),
		assetsProcessor:    assets.NewProcessor(l, ctx),
		typeProcessor:      itemtype.NewProcessor(l, ctx),
		stationProcessor:   station.NewProcessor(l, ctx),
		systemProcessor:    system.NewProcessor(l, ctx),
		regionProcessor:    region.NewProcessor(l, ctx),
		structureProcessor: structure.NewProcessor(l, ctx),
		cacheProcessor:     cache.NewProcessor(l, ctx, db),
		pinProcessor:       pin.NewProcessor(l, ctx, db),
	}
}

func (p *Processor) WithAssetsProcessor(ap assets.Processor) *Processor {
	p.assetsProcessor = ap
	return p
}

func (p *Processor) WithTypeProcessor(tp itemtype.Processor) *Processor {
	p.typeProcessor = tp
	return p
}

func (p *Processor) WithStationProcessor(sp station.Processor) *Processor {
	p.stationProcessor = sp
	return p
}

func (p *Processor) WithSystemProcessor(sp system.Processor) *Processor {
	p.systemProcessor = sp
	return p
}

func (p *Processor) WithRegionProcessor(rp region.Processor) *Processor {
	p.regionProcessor = rp
	return p
}

func (p *Processor) WithStructureProcessor(sp structure.Processor) *Processor {
	p.structureProcessor = sp
	return p
}

func (p *Processor) WithCacheProcessor(cp cache.Processor) *Processor {
	p.cacheProcessor = cp
	return p
}

// Build assembles and publishes the character's asset tree, reporting each
// stage through onProgress. At most one build runs per character; a second
// request while one is in flight returns ErrBuildInProgress and does not
// queue. A failed build retains the previously published tree.
func (p *Processor) Build(mb *message.Buffer) func(characterId uint32, forceRefresh bool, onProgress ProgressFunc) ([]asset.Model, error) {
	return func(characterId uint32, forceRefresh bool, onProgress ProgressFunc) ([]asset.Model, error) {
		k := NewKey(p.t.Id(), characterId)
		if !GetRegistry().BeginLoad(k) {
			p.l.Debugf("Dropping build request for character [%d], one is already in flight.", characterId)
			return nil, ErrBuildInProgress
		}
		defer GetRegistry().EndLoad(k)

		progress := func(s Status) {
			if onProgress != nil {
				onProgress(s)
			}
		}

		if !forceRefresh {
			if st, ok := GetRegistry().Get(k); ok && st.Loaded() && st.Err() == nil {
				progress(CompletedStatus())
				return st.Forest(), mb.Put(tree2.EnvEventTopicStatus, tree3.BuiltEventStatusProvider(characterId, uint32(len(st.Forest())), countItems(st.Forest())))
			}
		}

		var forest []asset.Model
		if !forceRefresh {
			cached, err := p.cacheProcessor.GetByCharacterId(characterId)
			if err != nil {
				return nil, p.fail(k, characterId, err)
			}
			forest = cached
		}

		if forest == nil {
			records, err := p.assetsProcessor.GetForCharacter(characterId, func(page int) { progress(LoadingStatus(page)) })
			if err != nil {
				return nil, p.fail(k, characterId, err)
			}
			progress(BuildingTreeStatus())
			forest = buildForest(records)
		}

		progress(ProcessingLocationsStatus())
		ln, err := p.resolveLocations(forest, progress)
		if err != nil {
			return nil, p.fail(k, characterId, err)
		}

		progress(PreparingContainersStatus())
		forest = decorateRoots(forest, ln)
		containers := indexContainers(forest)

		typeNames, err := p.resolveTypeNames(collectTypeIds(forest), progress)
		if err != nil {
			return nil, p.fail(k, characterId, err)
		}

		progress(SavingCacheStatus())
		err = p.cacheProcessor.Save(characterId, forest)
		if err != nil {
			return nil, p.fail(k, characterId, err)
		}

		GetRegistry().Publish(k, NewState(forest, typeNames, ln.regions, containers))
		progress(CompletedStatus())
		p.l.Infof("Built asset tree for character [%d] with [%d] locations.", characterId, len(forest))
		return forest, mb.Put(tree2.EnvEventTopicStatus, tree3.BuiltEventStatusProvider(characterId, uint32(len(forest)), countItems(forest)))
	}
}

func (p *Processor) BuildAndEmit(characterId uint32, forceRefresh bool, onProgress ProgressFunc) ([]asset.Model, error) {
	var forest []asset.Model
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		forest, err = p.Build(buf)(characterId, forceRefresh, onProgress)
		return err
	})
	return forest, err
}

// fail records the error against the character's state and announces it. A
// canceled build is not a failure; the previously published state stands
// untouched.
func (p *Processor) fail(k Key, characterId uint32, err error) error {
	if errors.Is(err, context.Canceled) {
		p.l.Debugf("Build for character [%d] canceled.", characterId)
		return err
	}
	p.l.WithError(err).Errorf("Unable to build asset tree for character [%d].", characterId)
	GetRegistry().Fail(k, err)
	emitErr := producer.ProviderImpl(p.l)(p.ctx)(tree2.EnvEventTopicStatus)(tree3.ErrorEventStatusProvider(characterId, err.Error()))
	if emitErr != nil {
		p.l.WithError(emitErr).Errorf("Unable to announce build failure for character [%d].", characterId)
	}
	return err
}

// resolveLocations classifies the forest's roots and resolves their names.
// Stations, systems, and regions resolve in batches; structures resolve one
// at a time with per-structure progress, and an inaccessible structure is
// skipped rather than failing the build.
func (p *Processor) resolveLocations(roots []asset.Model, progress ProgressFunc) (*locationNames, error) {
	ln := newLocationNames()

	var stationIds []uint64
	var structureIds []uint64
	systemIds := make(map[uint32]bool)
	for _, r := range roots {
		switch r.LocationType() {
		case asset.LocationTypeStation:
			stationIds = append(stationIds, r.LocationId())
		case asset.LocationTypeSolarSystem:
			systemIds[uint32(r.LocationId())] = true
		default:
			structureIds = append(structureIds, r.LocationId())
		}
	}

	stations, err := p.stationProcessor.GetByIds(stationIds)
	if err != nil {
		return nil, err
	}
	for _, s := range stations {
		ln.stations[s.Id()] = s.Name()
		ln.stationSystems[s.Id()] = s.SystemId()
		systemIds[s.SystemId()] = true
	}

	total := len(structureIds)
	for i, id := range structureIds {
		if err = p.ctx.Err(); err != nil {
			return nil, err
		}
		progress(FetchingStructureInfoStatus(i+1, total))
		s, err := p.structureProcessor.GetById(id)
		if err != nil {
			p.l.WithError(err).Warnf("Unable to resolve structure [%d], keeping sentinel name.", id)
			continue
		}
		ln.structures[s.Id()] = s.Name()
		ln.structureSystems[s.Id()] = s.SystemId()
		systemIds[s.SystemId()] = true
	}

	sids := make([]uint32, 0, len(systemIds))
	for id := range systemIds {
		if id != 0 {
			sids = append(sids, id)
		}
	}
	sort.Slice(sids, func(i, j int) bool { return sids[i] < sids[j] })
	systems, err := p.systemProcessor.GetByIds(sids)
	if err != nil {
		return nil, err
	}
	regionIds := make(map[uint32]bool)
	for _, s := range systems {
		ln.systems[s.Id()] = s.Name()
		ln.systemRegions[s.Id()] = s.RegionId()
		ln.systemSecurity[s.Id()] = s.SecurityStatus()
		if s.RegionId() != 0 {
			regionIds[s.RegionId()] = true
		}
	}

	rids := make([]uint32, 0, len(regionIds))
	for id := range regionIds {
		rids = append(rids, id)
	}
	sort.Slice(rids, func(i, j int) bool { return rids[i] < rids[j] })
	regions, err := p.regionProcessor.GetByIds(rids)
	if err != nil {
		return nil, err
	}
	for _, r := range regions {
		ln.regions[r.Id()] = r.Name()
	}
	return ln, nil
}

func (p *Processor) resolveTypeNames(typeIds []uint32, progress ProgressFunc) (map[uint32]NameEntry, error) {
	names := make(map[uint32]NameEntry, len(typeIds))
	total := len(typeIds)
	for start := 0; start < total; start += nameBatchSize {
		end := start + nameBatchSize
		if end > total {
			end = total
		}
		progress(LoadingNamesStatus(end, total))
		ms, err := p.typeProcessor.GetByIds(typeIds[start:end])
		if err != nil {
			return nil, err
		}
		for _, m := range ms {
			names[m.Id()] = NewNameEntry(m.Name(), m.IconName())
		}
	}
	return names, nil
}

func (p *Processor) state(characterId uint32) (State, error) {
	st, ok := GetRegistry().Get(NewKey(p.t.Id(), characterId))
	if !ok || !st.Loaded() {
		return State{}, ErrNotLoaded
	}
	return st, nil
}

// Overview returns whatever state the registry holds for the character, even
// a bare failure record.
func (p *Processor) Overview(characterId uint32) (State, bool) {
	return GetRegistry().Get(NewKey(p.t.Id(), characterId))
}

func (p *Processor) Forest(characterId uint32) ([]asset.Model, error) {
	st, err := p.state(characterId)
	if err != nil {
		return nil, err
	}
	return st.Forest(), nil
}

// PinnedAndRegionRoots splits the top-level locations into the pinned set and
// region groups, resolved fresh against current pin state.
func (p *Processor) PinnedAndRegionRoots(characterId uint32) ([]asset.Model, []grouping.RegionGroup, error) {
	st, err := p.state(characterId)
	if err != nil {
		return nil, nil, err
	}
	pinned, err := p.pinProcessor.LocationIdsByCharacterId(characterId)
	if err != nil {
		return nil, nil, err
	}
	pinnedRoots, groups := grouping.SplitRoots(st.Forest(), pinned, st.RegionName, st.DisplayName)
	return pinnedRoots, groups, nil
}

// GroupedAssets arranges the direct children of one container or location
// into display sections.
func (p *Processor) GroupedAssets(characterId uint32, locationId uint64) ([]grouping.Section, error) {
	st, err := p.state(characterId)
	if err != nil {
		return nil, err
	}
	node, ok := st.Container(locationId)
	if !ok {
		return nil, ErrUnknownLocation
	}
	return grouping.Group(p.l, node.Items(), st.DisplayName), nil
}

func (p *Processor) Search(characterId uint32, query string) ([]search.Result, State, error) {
	st, err := p.state(characterId)
	if err != nil {
		return nil, State{}, err
	}
	return search.Search(st.Forest(), query, st.TypeNameAndIcon), st, nil
}

// Clear drops the published state and the persisted cache for the character.
func (p *Processor) Clear(characterId uint32) error {
	GetRegistry().Clear(NewKey(p.t.Id(), characterId))
	return p.cacheProcessor.DeleteByCharacterId(characterId)
}

// KafkaProgressFunc announces each build stage on the status topic.
func KafkaProgressFunc(l logrus.FieldLogger, ctx context.Context, characterId uint32) ProgressFunc {
	return func(s Status) {
		err := producer.ProviderImpl(l)(ctx)(tree2.EnvEventTopicStatus)(tree3.ProgressEventStatusProvider(characterId, string(s.Stage()), s.Page(), s.Current(), s.Total()))
		if err != nil {
			l.WithError(err).Errorf("Unable to announce build progress for character [%d].", characterId)
		}
	}
}
