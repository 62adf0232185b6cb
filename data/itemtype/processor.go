package itemtype

import (
	"context"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
)

type Processor interface {
	GetByIds(typeIds []uint32) ([]Model, error)
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

// GetByIds resolves display names and icons for a batch of type ids. Ids the
// store cannot resolve are simply absent from the result.
func (p *ProcessorImpl) GetByIds(typeIds []uint32) ([]Model, error) {
	if len(typeIds) == 0 {
		return make([]Model, 0), nil
	}
	rms, err := requestByIds(typeIds)(p.l, p.ctx)
	if err != nil {
		return nil, err
	}
	return model.SliceMap(Extract)(model.FixedProvider(rms))(model.ParallelMap())()
}
