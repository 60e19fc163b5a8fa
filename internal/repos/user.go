package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores) (*types.User, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.User, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
	Exists(ctx context.Context, tx *gorm.DB, userID string) (bool, error)
	ReplaceScores(ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores) (*types.User, error)
	UpsertTopicScore(ctx context.Context, tx *gorm.DB, userID string, topic string, score float64) (*types.User, error)
	Delete(ctx context.Context, tx *gorm.DB, userID string) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if scores == nil {
		scores = types.TopicScores{}
	}
	now := time.Now().UTC()
	user := &types.User{
		ID:          uuid.New(),
		UserID:      userID,
		TopicScores: scores,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	ur.log.Info("Created user", "user_id", userID)
	return user, nil
}

func (ur *userRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var user types.User
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*types.User
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) Exists(ctx context.Context, tx *gorm.DB, userID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) ReplaceScores(ctx context.Context, tx *gorm.DB, userID string, scores types.TopicScores) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if scores == nil {
		scores = types.TopicScores{}
	}
	res := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"topic_scores": scores,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	ur.log.Info("Replaced topic scores", "user_id", userID)
	return ur.GetByUserID(ctx, transaction, userID)
}

// UpsertTopicScore sets a single topic score, creating the user record when
// it does not exist yet. The read-modify-write runs against the provided
// transaction (or the base handle) without cross-request locking.
func (ur *userRepo) UpsertTopicScore(ctx context.Context, tx *gorm.DB, userID string, topic string, score float64) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	user, err := ur.GetByUserID(ctx, transaction, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ur.Create(ctx, transaction, userID, types.TopicScores{{Topic: topic, Score: score}})
		}
		return nil, err
	}

	user.TopicScores = user.TopicScores.Upsert(topic, score)
	user.UpdatedAt = time.Now().UTC()
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"topic_scores": user.TopicScores,
			"updated_at":   user.UpdatedAt,
		}).Error; err != nil {
		return nil, err
	}
	ur.log.Info("Updated topic score", "user_id", userID, "topic", topic, "score", score)
	return user, nil
}

func (ur *userRepo) Delete(ctx context.Context, tx *gorm.DB, userID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.User{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	ur.log.Info("Deleted user", "user_id", userID)
	return true, nil
}
