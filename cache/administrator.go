package cache

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func upsert(db *gorm.DB, tenantId uuid.UUID, characterId uint32, forest []byte) error {
	var e Entity
	err := db.Where(&Entity{TenantId: tenantId, CharacterId: characterId}).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&Entity{TenantId: tenantId, CharacterId: characterId, Forest: forest}).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&e).Select("Forest").Updates(&Entity{Forest: forest}).Error
}

func deleteByCharacterId(db *gorm.DB, tenantId uuid.UUID, characterId uint32) error {
	return db.Where(&Entity{TenantId: tenantId, CharacterId: characterId}).Delete(&Entity{}).Error
}
