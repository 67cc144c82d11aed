package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	ProfileImage *string   `gorm:"size:512" json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser - представление пользователя для ответов API (без хеша пароля)
type PublicUser struct {
	ID   uint     `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}
