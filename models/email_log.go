package models

import (
	"time"
)

const (
	EmailTypeCreation   = "creation"
	EmailTypeSubmission = "submission"
)

// EmailLog is an append-only audit row, written in the same transaction as the
// quiz event it belongs to, whether or not the email itself goes out.
type EmailLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	QuizID    uint      `json:"quizId" gorm:"not null;index"`
	Recipient string    `json:"recipient" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	SentAt    time.Time `json:"sentAt" gorm:"autoCreateTime"`
}
