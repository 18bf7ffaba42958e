package models

import (
	"time"
)

type Quiz struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	UserID    *uint     `json:"userId,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	EmailLogs []EmailLog `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
