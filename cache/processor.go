package cache

import (
	"atlas-assets/asset"
	"context"
	"encoding/json"

	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor interface {
	Save(characterId uint32, forest []asset.Model) error
	GetByCharacterId(characterId uint32) ([]asset.Model, error)
	DeleteByCharacterId(characterId uint32) error
}

type ProcessorImpl struct {
	l   logrus.FieldLogger
	ctx context.Context
	db  *gorm.DB
	t   tenant.Model
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *ProcessorImpl {
	return &ProcessorImpl{
		l:   l,
		ctx: ctx,
		db:  db,
		t:   tenant.MustFromContext(ctx),
	}
}

// Save replaces the character's persisted forest wholesale. The stored form
// is the REST model, which round-trips the leaf/empty-container distinction.
func (p *ProcessorImpl) Save(characterId uint32, forest []asset.Model) error {
	rms, err := model.SliceMap(asset.Transform)(model.FixedProvider(forest))(model.ParallelMap())()
	if err != nil {
		return err
	}
	data, err := json.Marshal(rms)
	if err != nil {
		return err
	}
	return upsert(p.db, p.t.Id(), characterId, data)
}

// GetByCharacterId returns the persisted forest, or nil when none has been
// saved for the character.
func (p *ProcessorImpl) GetByCharacterId(characterId uint32) ([]asset.Model, error) {
	es, err := getByCharacterId(p.t.Id(), characterId)(p.db)()
	if err != nil {
		return nil, err
	}
	if len(es) == 0 {
		return nil, nil
	}
	var rms []asset.RestModel
	err = json.Unmarshal(es[0].Forest, &rms)
	if err != nil {
		return nil, err
	}
	return model.SliceMap(asset.Extract)(model.FixedProvider(rms))(model.ParallelMap())()
}

func (p *ProcessorImpl) DeleteByCharacterId(characterId uint32) error {
	return deleteByCharacterId(p.db, p.t.Id(), characterId)
}
