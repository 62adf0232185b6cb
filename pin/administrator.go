package pin

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, tenantId uuid.UUID, characterId uint32, locationId uint64) (Model, error) {
	e := &Entity{
		TenantId:    tenantId,
		CharacterId: characterId,
		LocationId:  locationId,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteByCharacterAndLocation(db *gorm.DB, tenantId uuid.UUID, characterId uint32, locationId uint64) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId, LocationId: locationId}).Delete(&Entity{}).Error
}
