package models

type Tag struct {
	EntityBase
	Name    string   `json:"name" gorm:"size:100;not null;uniqueIndex:idx_tags_name_active,where:is_deleted = false"`
	FaqTags []FaqTag `json:"-" gorm:"foreignKey:TagID"`
}
