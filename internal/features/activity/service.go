package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityService interface {
	LogActivity(ctx context.Context, userID primitive.ObjectID, date time.Time, duration, note string) (*Record, error)
	GetRecord(ctx context.Context, id string) (*Record, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]Record, int64, error)
	ListRecords(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]Record, int64, error)
	DeleteRecord(ctx context.Context, id string) error
}

type ActivityServiceImpl struct {
	Repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) ActivityService {
	return &ActivityServiceImpl{Repo: repo}
}

func (s *ActivityServiceImpl) LogActivity(ctx context.Context, userID primitive.ObjectID, date time.Time, duration, note string) (*Record, error) {
	if userID.IsZero() {
		return nil, errors.New("user id is required")
	}
	if strings.TrimSpace(duration) == "" {
		return nil, errors.New("duration is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	record := &Record{
		UserID:   userID,
		Date:     date,
		Duration: strings.TrimSpace(duration),
		Note:     note,
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ActivityServiceImpl) GetRecord(ctx context.Context, id string) (*Record, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ActivityServiceImpl) ListForUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]Record, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.Repo.ListByUser(ctx, userID, limit, (page-1)*limit)
}

func (s *ActivityServiceImpl) ListRecords(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]Record, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.Repo.List(ctx, filter, limit, (page-1)*limit)
}

func (s *ActivityServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
