package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(25);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Task struct {
	ID        uint      `gorm:"primaryKey"`
	Content   string    `gorm:"type:varchar(100);not null"`
	Completed bool      `gorm:"not null;default:false"`
	Created   time.Time `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
}
