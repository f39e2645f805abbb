package service

import (
	"context"

	"second-brain-be/internal/entity"
	"second-brain-be/internal/repository/contract"
	"second-brain-be/internal/repository/specification"
	"second-brain-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. They record the specifications
// passed to them so tests can assert on query composition without a database.

type fakeNoteRepo struct {
	created       []*entity.Note
	updated       []*entity.Note
	deleted       []uuid.UUID
	findOneResult *entity.Note
	findAllResult []*entity.Note
	findAllSpecs  []specification.Specification
	countSpecs    [][]specification.Specification
	countFn       func(specs []specification.Specification) (int64, error)
	err           error
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, note)
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, note)
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	return r.findOneResult, r.err
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.findAllSpecs = specs
	return r.findAllResult, r.err
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.countSpecs = append(r.countSpecs, specs)
	if r.countFn != nil {
		return r.countFn(specs)
	}
	return int64(len(r.findAllResult)), r.err
}

type fakeTaskRepo struct {
	created       []*entity.Task
	updated       []*entity.Task
	deleted       []uuid.UUID
	findOneResult *entity.Task
	findAllResult []*entity.Task
	findAllSpecs  []specification.Specification
	countSpecs    [][]specification.Specification
	countFn       func(specs []specification.Specification) (int64, error)
	err           error
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, task)
	return nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	if r.err != nil {
		return r.err
	}
	r.updated = append(r.updated, task)
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeTaskRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	return r.findOneResult, r.err
}

func (r *fakeTaskRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	r.findAllSpecs = specs
	return r.findAllResult, r.err
}

func (r *fakeTaskRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.countSpecs = append(r.countSpecs, specs)
	if r.countFn != nil {
		return r.countFn(specs)
	}
	return int64(len(r.findAllResult)), r.err
}

type fakeTagRepo struct {
	findAllResult []*entity.Tag
	findAllSpecs  []specification.Specification
	err           error
}

func (r *fakeTagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	return r.err
}

func (r *fakeTagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	r.findAllSpecs = specs
	return r.findAllResult, r.err
}

type fakeUserRepo struct {
	created       []*entity.User
	findOneResult *entity.User
	err           error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.findOneResult, r.err
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, r.err
}

type fakeUnitOfWork struct {
	users *fakeUserRepo
	notes *fakeNoteRepo
	tasks *fakeTaskRepo
	tags  *fakeTagRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository { return u.notes }
func (u *fakeUnitOfWork) TaskRepository() contract.TaskRepository { return u.tasks }
func (u *fakeUnitOfWork) TagRepository() contract.TagRepository   { return u.tags }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			users: &fakeUserRepo{},
			notes: &fakeNoteRepo{},
			tasks: &fakeTaskRepo{},
			tags:  &fakeTagRepo{},
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func hasSpec[T specification.Specification](specs []specification.Specification) bool {
	for _, s := range specs {
		if _, ok := s.(T); ok {
			return true
		}
	}
	return false
}
