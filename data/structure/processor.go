package structure

import (
	"context"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/requests"
	"github.com/sirupsen/logrus"
)

type Processor interface {
	GetById(structureId uint64) (Model, error)
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

func (p *ProcessorImpl) ByIdProvider(structureId uint64) model.Provider[Model] {
	return requests.Provider[RestModel, Model](p.l, p.ctx)(requestById(structureId), Extract)
}

func (p *ProcessorImpl) GetById(structureId uint64) (Model, error) {
	return p.ByIdProvider(structureId)()
}
