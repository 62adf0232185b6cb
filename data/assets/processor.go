package assets

import (
	"context"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
)

// PageSize is the page size requested from the gateway. A short page marks
// the end of the record set.
const PageSize = 1000

type Processor interface {
	GetForCharacter(characterId uint32, onPage func(page int)) ([]Model, error)
}

type ProcessorImpl struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context) *ProcessorImpl {
	return &ProcessorImpl{
		l:   l,
		ctx: ctx,
	}
}

func (p *ProcessorImpl) GetForCharacter(characterId uint32, onPage func(page int)) ([]Model, error) {
	var results []Model
	for page := 1; ; page++ {
		if onPage != nil {
			onPage(page)
		}
		rms, err := requestByCharacterId(characterId, page)(p.l, p.ctx)
		if err != nil {
			return nil, err
		}
		ms, err := model.SliceMap(Extract)(model.FixedProvider(rms))(model.ParallelMap())()
		if err != nil {
			return nil, err
		}
		results = append(results, ms...)
		if len(rms) < PageSize {
			break
		}
	}
	return results, nil
}
