package mock

import (
	"atlas-assets/data/region"
)

type ProcessorImpl struct {
	GetByIdsFn func(regionIds []uint32) ([]region.Model, error)
}

func (p *ProcessorImpl) GetByIds(regionIds []uint32) ([]region.Model, error) {
	return p.GetByIdsFn(regionIds)
}
