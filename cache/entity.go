package cache

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId    uuid.UUID `gorm:"not null;uniqueIndex:idx_forest_owner"`
	Id          uint32    `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId uint32    `gorm:"not null;uniqueIndex:idx_forest_owner"`
	Forest      []byte    `gorm:"not null"`
	UpdatedAt   time.Time
}

func (e Entity) TableName() string {
	return "asset_forests"
}
