package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/repos"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type DocumentService struct {
	db           *gorm.DB
	log          *logger.Logger
	documentRepo repos.DocumentRepo
}

func NewDocumentService(db *gorm.DB, log *logger.Logger, documentRepo repos.DocumentRepo) *DocumentService {
	return &DocumentService{
		db:           db,
		log:          log.With("service", "DocumentService"),
		documentRepo: documentRepo,
	}
}

type CreateDocumentInput struct {
	UserID          string
	Title           string
	DocumentContent string
	TopicScores     types.TopicScores
	Questions       []string
}

func (s *DocumentService) Create(ctx context.Context, in CreateDocumentInput) (*types.Document, error) {
	title := in.Title
	if title == "" {
		title = fmt.Sprintf("Document %s", time.Now().UTC().Format("2006-01-02 15:04:05"))
	}
	doc := &types.Document{
		UserID:          in.UserID,
		Title:           title,
		DocumentContent: in.DocumentContent,
		TopicScores:     in.TopicScores,
		Questions:       datatypes.JSONSlice[string](in.Questions),
	}
	return s.documentRepo.Create(ctx, nil, doc)
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*types.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Sprintf("Document %s not found", id))
		}
		return nil, err
	}
	return doc, nil
}

// List returns a user's documents, or all documents when userID is empty.
func (s *DocumentService) List(ctx context.Context, userID string) ([]*types.Document, error) {
	return s.documentRepo.List(ctx, nil, userID)
}

// MergeScores folds incoming scores into the document. Scores are taken as
// sent: the bulk path does not range-check (only the per-topic user update
// does).
func (s *DocumentService) MergeScores(ctx context.Context, id uuid.UUID, incoming types.TopicScores) (*types.Document, error) {
	var doc *types.Document
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		doc, err = s.documentRepo.MergeScores(ctx, tx, id, incoming)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Sprintf("Document %s not found", id))
		}
		return nil, err
	}
	return doc, nil
}

// AppendQuestions extends the document's bounded question history.
func (s *DocumentService) AppendQuestions(ctx context.Context, id uuid.UUID, questions []string) (*types.Document, error) {
	var doc *types.Document
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		doc, err = s.documentRepo.AppendQuestions(ctx, tx, id, questions)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Sprintf("Document %s not found", id))
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.documentRepo.Delete(ctx, nil, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apierr.NotFound(fmt.Sprintf("Document %s not found", id))
	}
	return nil
}
