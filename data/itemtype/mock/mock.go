package mock

import (
	"atlas-assets/data/itemtype"
)

type ProcessorImpl struct {
	GetByIdsFn func(typeIds []uint32) ([]itemtype.Model, error)
}

func (p *ProcessorImpl) GetByIds(typeIds []uint32) ([]itemtype.Model, error) {
	return p.GetByIdsFn(typeIds)
}
