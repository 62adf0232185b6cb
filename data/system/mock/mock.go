package mock

import (
	"atlas-assets/data/system"
)

type ProcessorImpl struct {
	GetByIdsFn func(systemIds []uint32) ([]system.Model, error)
}

func (p *ProcessorImpl) GetByIds(systemIds []uint32) ([]system.Model, error) {
	return p.GetByIdsFn(systemIds)
}
