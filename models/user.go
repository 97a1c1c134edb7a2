package models

type User struct {
	EntityBase
	Username     string `json:"username" gorm:"size:50;not null;uniqueIndex:idx_users_username_active,where:is_deleted = false"`
	Email        string `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_email_active,where:is_deleted = false"`
	PasswordHash string `json:"-" gorm:"not null"`
	Faqs         []Faq  `json:"-" gorm:"foreignKey:UserID"`
}
