package region

import (
	"context"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
)

type Processor interface {
	GetByIds(regionIds []uint32) ([]Model, error)
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

func (p *ProcessorImpl) GetByIds(regionIds []uint32) ([]Model, error) {
	if len(regionIds) == 0 {
		return make([]Model, 0), nil
	}
	rms, err := requestByIds(regionIds)(p.l, p.ctx)
	if err != nil {
		return nil, err
	}
	return model.SliceMap(Extract)(model.FixedProvider(rms))(model.ParallelMap())()
}
