package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	TopicScores TopicScores `gorm:"type:jsonb;column:topic_scores" json:"topic_scores"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
