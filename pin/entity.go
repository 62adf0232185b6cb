package pin

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId    uuid.UUID `gorm:"not null"`
	Id          uint32    `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId uint32    `gorm:"not null;index"`
	LocationId  uint64    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "pins"
}

func Make(e Entity) (Model, error) {
	return Model{
		id:          e.Id,
		characterId: e.CharacterId,
		locationId:  e.LocationId,
	}, nil
}
