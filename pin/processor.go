package pin

import (
	model2 "atlas-assets/model"
	"context"

	pin2 "atlas-assets/kafka/message/pin"
	pin3 "atlas-assets/kafka/producer/pin"

	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	tenant "github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Processor struct {
	l                logrus.FieldLogger
	ctx              context.Context
	db               *gorm.DB
	t                tenant.Model
	GetByCharacterId func(characterId uint32) ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:   l,
		ctx: ctx,
		db:  db,
		t:   tenant.MustFromContext(ctx),
	}
	p.GetByCharacterId = model2.CollapseProvider(p.ByCharacterIdProvider)
	return p
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return &Processor{
		l:                p.l,
		ctx:              p.ctx,
		db:               db,
		t:                p.t,
		GetByCharacterId: p.GetByCharacterId,
	}
}

func (p *Processor) ByCharacterIdProvider(characterId uint32) model.Provider[[]Model] {
	return model.SliceMap(Make)(getByCharacterId(p.t.Id(), characterId)(p.db))(model.ParallelMap())
}

// LocationIdsByCharacterId returns the character's pinned top-level location
// ids as a set.
func (p *Processor) LocationIdsByCharacterId(characterId uint32) (map[uint64]bool, error) {
	ms, err := p.GetByCharacterId(characterId)
	if err != nil {
		return nil, err
	}
	ids := make(map[uint64]bool, len(ms))
	for _, m := range ms {
		ids[m.LocationId()] = true
	}
	return ids, nil
}

// Toggle flips membership of locationId in the character's pin set. The
// write completes before the function returns; toggling twice restores the
// original membership.
func (p *Processor) Toggle(mb *message.Buffer) func(characterId uint32, locationId uint64) (bool, error) {
	return func(characterId uint32, locationId uint64) (bool, error) {
		var pinned bool
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			es, err := getByCharacterAndLocation(p.t.Id(), characterId, locationId)(tx)()
			if err != nil {
				return err
			}
			if len(es) > 0 {
				err = deleteByCharacterAndLocation(tx, p.t.Id(), characterId, locationId)
				if err != nil {
					return err
				}
				pinned = false
				return mb.Put(pin2.EnvEventTopicStatus, pin3.UnpinnedEventStatusProvider(characterId, locationId))
			}
			_, err = create(tx, p.t.Id(), characterId, locationId)
			if err != nil {
				return err
			}
			pinned = true
			return mb.Put(pin2.EnvEventTopicStatus, pin3.PinnedEventStatusProvider(characterId, locationId))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to toggle pin for character [%d] location [%d].", characterId, locationId)
			return false, txErr
		}
		return pinned, nil
	}
}

// Delete removes locationId from the character's pin set. Deleting an
// absent pin is a no-op and emits nothing.
func (p *Processor) Delete(mb *message.Buffer) func(characterId uint32, locationId uint64) error {
	return func(characterId uint32, locationId uint64) error {
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			es, err := getByCharacterAndLocation(p.t.Id(), characterId, locationId)(tx)()
			if err != nil {
				return err
			}
			if len(es) == 0 {
				return nil
			}
			err = deleteByCharacterAndLocation(tx, p.t.Id(), characterId, locationId)
			if err != nil {
				return err
			}
			return mb.Put(pin2.EnvEventTopicStatus, pin3.UnpinnedEventStatusProvider(characterId, locationId))
		})
		if txErr != nil {
			p.l.WithError(txErr).Errorf("Unable to delete pin for character [%d] location [%d].", characterId, locationId)
		}
		return txErr
	}
}

func (p *Processor) DeleteAndEmit(characterId uint32, locationId uint64) error {
	return message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		return p.Delete(buf)(characterId, locationId)
	})
}

func (p *Processor) ToggleAndEmit(characterId uint32, locationId uint64) (bool, error) {
	var pinned bool
	err := message.Emit(producer.ProviderImpl(p.l)(p.ctx))(func(buf *message.Buffer) error {
		var err error
		pinned, err = p.Toggle(buf)(characterId, locationId)
		return err
	})
	return pinned, err
}
