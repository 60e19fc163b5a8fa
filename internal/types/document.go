package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document is a stored study document. UserID is a plain reference: no
// foreign key, no cascade (deleting a user leaves its documents behind).
type Document struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string                      `gorm:"index;not null;column:user_id" json:"user_id"`
	Title           string                      `gorm:"not null;column:title" json:"title"`
	DocumentContent string                      `gorm:"column:document_content" json:"document_content"`
	TopicScores     TopicScores                 `gorm:"type:jsonb;column:topic_scores" json:"topic_scores"`
	Questions       datatypes.JSONSlice[string] `gorm:"column:questions" json:"questions"`
	CreatedAt       time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"not null" json:"updated_at"`
}

func (Document) TableName() string {
	return "document"
}
