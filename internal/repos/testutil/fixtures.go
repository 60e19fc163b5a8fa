package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/quizdeck-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores) *types.User {
	tb.Helper()
	if scores == nil {
		scores = types.TopicScores{}
	}
	now := time.Now().UTC()
	u := &types.User{
		ID:          uuid.New(),
		UserID:      userID,
		TopicScores: scores,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDocument(tb testing.TB, ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores, questions []string) *types.Document {
	tb.Helper()
	if scores == nil {
		scores = types.TopicScores{}
	}
	now := time.Now().UTC()
	d := &types.Document{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "doc",
		DocumentContent: "content",
		TopicScores:     scores,
		Questions:       datatypes.JSONSlice[string](questions),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed document: %v", err)
	}
	return d
}
