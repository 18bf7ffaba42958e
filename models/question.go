package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Option is one choice within a question. IDs are 1-based and assigned by
// position when the quiz is created.
type Option struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// OptionList stores a question's options as a single JSON column.
type OptionList []Option

func (o OptionList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	}
	return fmt.Errorf("unsupported type for OptionList: %T", value)
}

type Question struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	QuizID          uint       `json:"quizId" gorm:"not null;index"`
	QuestionText    string     `json:"questionText" gorm:"not null"`
	Options         OptionList `json:"options" gorm:"type:jsonb;not null"`
	CorrectOptionID int        `json:"correctOptionId" gorm:"not null"`
	CreatedAt       time.Time  `json:"createdAt"`
}
