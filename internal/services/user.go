package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/repos"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type UserService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) *UserService {
	return &UserService{
		db:       db,
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *UserService) Create(ctx context.Context, userID string, scores types.TopicScores) (*types.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apierr.Validation("User ID cannot be empty")
	}

	var created *types.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.userRepo.Exists(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("check user exists: %w", err)
		}
		if exists {
			return apierr.AlreadyExists(fmt.Sprintf("User %s already exists", userID))
		}
		created, err = s.userRepo.Create(ctx, tx, userID, scores)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*types.User, error) {
	user, err := s.userRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Sprintf("User %s not found", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*types.User, error) {
	return s.userRepo.GetAll(ctx, nil)
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	deleted, err := s.userRepo.Delete(ctx, nil, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apierr.NotFound(fmt.Sprintf("User %s not found", userID))
	}
	return nil
}

// ReplaceScores overwrites the user's whole score list. No merge, no range
// check (matching the single validated entry point below).
func (s *UserService) ReplaceScores(ctx context.Context, userID string, scores types.TopicScores) (*types.User, error) {
	user, err := s.userRepo.ReplaceScores(ctx, nil, userID, scores)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Sprintf("User %s not found", userID))
		}
		return nil, err
	}
	return user, nil
}

// UpdateTopicScore sets one topic score, creating the user when absent. This
// is the only score path that range-checks its input.
func (s *UserService) UpdateTopicScore(ctx context.Context, userID, topic string, score float64) (*types.User, error) {
	if err := (types.TopicScore{Topic: topic, Score: score}).Validate(); err != nil {
		return nil, err
	}

	var user *types.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.userRepo.UpsertTopicScore(ctx, tx, userID, topic, score)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetTopicScore looks up a single topic's score for a user.
func (s *UserService) GetTopicScore(ctx context.Context, userID, topic string) (float64, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	score, ok := user.TopicScores.Get(topic)
	if !ok {
		return 0, apierr.NotFound(fmt.Sprintf("Topic %s not found for user %s", topic, userID))
	}
	return score, nil
}
