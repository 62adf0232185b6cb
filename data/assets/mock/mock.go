package mock

import (
	"atlas-assets/data/assets"
)

type ProcessorImpl struct {
	GetForCharacterFn func(characterId uint32, onPage func(page int)) ([]assets.Model, error)
}

func (p *ProcessorImpl) GetForCharacter(characterId uint32, onPage func(page int)) ([]assets.Model, error) {
	return p.GetForCharacterFn(characterId, onPage)
}
