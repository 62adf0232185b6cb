package mock

import (
	"atlas-assets/asset"
)

type ProcessorImpl struct {
	SaveFn                func(characterId uint32, forest []asset.Model) error
	GetByCharacterIdFn    func(characterId uint32) ([]asset.Model, error)
	DeleteByCharacterIdFn func(characterId uint32) error
}

func (p *ProcessorImpl) Save(characterId uint32, forest []asset.Model) error {
	return p.SaveFn(characterId, forest)
}

func (p *ProcessorImpl) GetByCharacterId(characterId uint32) ([]asset.Model, error) {
	return p.GetByCharacterIdFn(characterId)
}

func (p *ProcessorImpl) DeleteByCharacterId(characterId uint32) error {
	return p.DeleteByCharacterIdFn(characterId)
}
