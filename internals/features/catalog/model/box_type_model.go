// file: internals/features/catalog/model/box_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   BoxTypeModel — map to table box_types

   box_type_is_default marks the type used for ad-hoc recurring
   events (the "ایونت" type).
   ======================================================= */

type BoxTypeModel struct {
	BoxTypeID        uuid.UUID `json:"box_type_id" gorm:"type:uuid;primaryKey;column:box_type_id"`
	BoxTypeName      string    `json:"box_type_name" gorm:"type:varchar(100);not null;uniqueIndex;column:box_type_name"`
	BoxTypeIsDefault bool      `json:"box_type_is_default" gorm:"type:boolean;not null;default:false;column:box_type_is_default"`

	BoxTypeCreatedAt time.Time      `json:"box_type_created_at" gorm:"column:box_type_created_at;not null;autoCreateTime"`
	BoxTypeDeletedAt gorm.DeletedAt `json:"box_type_deleted_at" gorm:"column:box_type_deleted_at;index"`
}

func (BoxTypeModel) TableName() string { return "box_types" }

func (m *BoxTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.BoxTypeID == uuid.Nil {
		m.BoxTypeID = uuid.New()
	}
	return nil
}
