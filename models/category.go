package models

type Category struct {
	EntityBase
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_categories_name_active,where:is_deleted = false"`
	Faqs []Faq  `json:"-" gorm:"foreignKey:CategoryID"`
}
