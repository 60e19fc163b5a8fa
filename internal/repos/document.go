package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type DocumentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, doc *types.Document) (*types.Document, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Document, error)
	List(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Document, error)
	MergeScores(ctx context.Context, tx *gorm.DB, id uuid.UUID, incoming types.TopicScores) (*types.Document, error)
	AppendQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID, questions []string) (*types.Document, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	repoLog := baseLog.With("repo", "DocumentRepo")
	return &documentRepo{db: db, log: repoLog}
}

func (dr *documentRepo) Create(ctx context.Context, tx *gorm.DB, doc *types.Document) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.TopicScores == nil {
		doc.TopicScores = types.TopicScores{}
	}
	if doc.Questions == nil {
		doc.Questions = datatypes.JSONSlice[string]{}
	}
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := transaction.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	dr.log.Info("Created document", "document_id", doc.ID, "user_id", doc.UserID)
	return doc, nil
}

func (dr *documentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var doc types.Document
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns the documents for a user, or every document when userID is
// empty.
func (dr *documentRepo) List(ctx context.Context, tx *gorm.DB, userID string) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Document
	q := transaction.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// MergeScores folds incoming scores into the document's existing ones
// (incoming wins on conflict) and refreshes updated_at.
func (dr *documentRepo) MergeScores(ctx context.Context, tx *gorm.DB, id uuid.UUID, incoming types.TopicScores) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	doc, err := dr.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}

	doc.TopicScores = doc.TopicScores.Merge(incoming)
	doc.UpdatedAt = time.Now().UTC()
	if err := transaction.WithContext(ctx).
		Model(&types.Document{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"topic_scores": doc.TopicScores,
			"updated_at":   doc.UpdatedAt,
		}).Error; err != nil {
		return nil, err
	}
	dr.log.Info("Merged document scores", "document_id", id)
	return doc, nil
}

// AppendQuestions appends to the document's question history and truncates it
// to the newest types.QuestionHistoryLimit entries.
func (dr *documentRepo) AppendQuestions(ctx context.Context, tx *gorm.DB, id uuid.UUID, questions []string) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	doc, err := dr.GetByID(ctx, transaction, id)
	if err != nil {
		return nil, err
	}

	doc.Questions = types.AppendQuestions(doc.Questions, questions)
	doc.UpdatedAt = time.Now().UTC()
	if err := transaction.WithContext(ctx).
		Model(&types.Document{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"questions":  datatypes.JSONSlice[string](doc.Questions),
			"updated_at": doc.UpdatedAt,
		}).Error; err != nil {
		return nil, err
	}
	dr.log.Info("Appended document questions", "document_id", id, "count", len(questions))
	return doc, nil
}

func (dr *documentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Document{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	dr.log.Info("Deleted document", "document_id", id)
	return true, nil
}
