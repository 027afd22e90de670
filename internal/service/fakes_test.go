package service

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/contract"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory stand-ins for the GORM repositories. They interpret the same
// specification values the real implementations feed to the query builder, so
// owner scoping and uniqueness behave like the store-level constraints.

type fakeFactory struct {
	users   *fakeUserRepo
	notes   *fakeNoteRepo
	lastUow *fakeUow
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		users: &fakeUserRepo{byEmail: map[string]*entity.User{}},
		notes: &fakeNoteRepo{},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.lastUow = &fakeUow{factory: f}
	return f.lastUow
}

type fakeUow struct {
	factory    *fakeFactory
	begun      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return u.factory.users }
func (u *fakeUow) NoteRepository() contract.NoteRepository { return u.factory.notes }

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return apperror.Conflict("email already registered")
	}
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.byEmail {
		if matchUser(user, specs) {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, user := range r.byEmail {
		if matchUser(user, specs) {
			count++
		}
	}
	return count, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByUserId:
			if u.Id != sp.UserId {
				return false
			}
		}
	}
	return true
}

type fakeNoteRepo struct {
	notes  []entity.Note
	nextId int64
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.nextId++
	note.Id = r.nextId
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for i := range r.notes {
		if matchNote(&r.notes[i], specs) {
			found := r.notes[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	for i := range r.notes {
		if matchNote(&r.notes[i], specs) {
			found := r.notes[i]
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) UpdateContent(ctx context.Context, userId uuid.UUID, id int64, content string) (bool, error) {
	for i := range r.notes {
		if r.notes[i].Id == id && r.notes[i].UserId == userId {
			r.notes[i].Content = content
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNoteRepo) DeleteOwned(ctx context.Context, userId uuid.UUID, id int64) (bool, error) {
	for i := range r.notes {
		if r.notes[i].Id == id && r.notes[i].UserId == userId {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matchNote(n *entity.Note, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByNoteId:
			if n.Id != sp.Id {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != sp.UserId {
				return false
			}
		}
	}
	return true
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
