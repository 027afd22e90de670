package service

import (
	"context"
	"strings"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id int64) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id int64) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{uowFactory: uowFactory}
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserId: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = &dto.NoteResponse{Id: note.Id, Content: note.Content}
	}
	return res, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id int64) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByNoteId{Id: id},
		specification.OwnedBy{UserId: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note not found")
	}

	return &dto.NoteResponse{Id: note.Id, Content: note.Content}, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Content: req.Content,
		UserId:  userId,
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	return &dto.NoteResponse{Id: note.Id, Content: note.Content}, nil
}

// Update validates content before the existence lookup: empty content on a
// nonexistent note answers 400, not 404.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	updated, err := uow.NoteRepository().UpdateContent(ctx, userId, id, req.Content)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NotFound("note not found")
	}

	return &dto.NoteResponse{Id: id, Content: req.Content}, nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.NoteRepository().DeleteOwned(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("note not found")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperror.Validation("content is required")
	}
	return nil
}
