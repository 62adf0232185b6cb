package mock

import (
	"atlas-assets/data/structure"
)

type ProcessorImpl struct {
	GetByIdFn func(structureId uint64) (structure.Model, error)
}

func (p *ProcessorImpl) GetById(structureId uint64) (structure.Model, error) {
	return p.GetByIdFn(structureId)
}
