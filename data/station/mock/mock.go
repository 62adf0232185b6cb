package mock

import (
	"atlas-assets/data/station"
)

type ProcessorImpl struct {
	GetByIdsFn func(stationIds []uint64) ([]station.Model, error)
}

func (p *ProcessorImpl) GetByIds(stationIds []uint64) ([]station.Model, error) {
	return p.GetByIdsFn(stationIds)
}
