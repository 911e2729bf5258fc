package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/data/repos"
	types "github.com/yungbote/studytrack-backend/internal/domain"
	"github.com/yungbote/studytrack-backend/internal/domain/study"
	"github.com/yungbote/studytrack-backend/internal/modules/study/backlog"
	"github.com/yungbote/studytrack-backend/internal/platform/dbctx"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

type BacklogService interface {
	// List returns the caller's items in priority order, then filtered by status
	// ("All" or empty keeps everything).
	List(dbc dbctx.Context, status string) ([]*types.BacklogItem, error)
	Create(dbc dbctx.Context, in backlog.NewItemInput) (*types.BacklogItem, error)
	UpdateStatus(dbc dbctx.Context, id uuid.UUID, status string) (*types.BacklogItem, error)
}

type backlogService struct {
	log   *logger.Logger
	items repos.BacklogItemRepo
}

func NewBacklogService(log *logger.Logger, items repos.BacklogItemRepo) BacklogService {
	return &backlogService{
		log:   log.With("service", "BacklogService"),
		items: items,
	}
}

func (s *backlogService) List(dbc dbctx.Context, status string) ([]*types.BacklogItem, error) {
	const op = "backlog.list"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	filter, err := backlog.ParseFilter(status)
	if err != nil {
		return nil, types.Validation(op, "%s", err.Error())
	}
	rows, err := s.items.ListByUser(dbc, userID)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	return backlog.Filter(backlog.Sort(rows), filter), nil
}

func (s *backlogService) Create(dbc dbctx.Context, in backlog.NewItemInput) (*types.BacklogItem, error) {
	const op = "backlog.create"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	item, err := backlog.NewItem(userID, in)
	if err != nil {
		return nil, types.Validation(op, "%s", err.Error())
	}
	created, err := s.items.Create(dbc, item)
	if err != nil {
		return nil, storeErr(s.log, op, err)
	}
	return created, nil
}

func (s *backlogService) UpdateStatus(dbc dbctx.Context, id uuid.UUID, status string) (*types.BacklogItem, error) {
	const op = "backlog.update_status"
	userID, err := requireUser(dbc, op)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, types.Validation(op, "item id is required")
	}
	if strings.TrimSpace(status) == "" {
		return nil, types.Validation(op, "status is required")
	}
	next, err := study.ParseStatus(status)
	if err != nil {
		return nil, types.Validation(op, "invalid status %q", status)
	}
	updated, err := s.items.UpdateStatus(dbc, userID, id, next)
	if err != nil {
		mapped := storeErr(s.log, op, err)
		if types.IsCode(mapped, types.CodeNotFound) {
			return nil, types.NotFound(op, "backlog item")
		}
		return nil, mapped
	}
	return updated, nil
}
