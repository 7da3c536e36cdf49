package service

import (
	"context"
	"time"

	"github.com/jmario91/GeneracionWidget-Back/internal/model"
	"github.com/jmario91/GeneracionWidget-Back/internal/query"
	"github.com/jmario91/GeneracionWidget-Back/internal/repo"
	"github.com/jmario91/GeneracionWidget-Back/internal/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Pagination is the metadata block returned alongside list results.
type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// UserService orchestrates validation, query translation and storage for the
// user resource.
type UserService interface {
	Create(ctx context.Context, input map[string]any) (*model.User, error)
	List(ctx context.Context, params query.ListParams) ([]model.User, *Pagination, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, input map[string]any) (*model.User, error)
	SoftDelete(ctx context.Context, id string) (*model.User, error)
	HardDelete(ctx context.Context, id string) (*model.User, error)
	Reactivate(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo      repo.UserRepository
	validator *validation.Validator
	logger    *zap.Logger
}

func NewUserService(repo repo.UserRepository, validator *validation.Validator, logger *zap.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// Create validates the full payload, applies creation defaults and inserts
// the document. Email uniqueness is left to the storage index; a duplicate
// surfaces as repo.ErrDuplicateEmail.
func (s *userService) Create(ctx context.Context, input map[string]any) (*model.User, error) {
	fields, err := s.validator.Validate(input, validation.Create)
	if err != nil {
		s.logger.Debug("create rejected by validation", zap.Error(err))
		return nil, err
	}

	if _, ok := fields["activo"]; !ok {
		fields["activo"] = true
	}
	if _, ok := fields["hobbies"]; !ok {
		fields["hobbies"] = []string{}
	}

	user, err := s.repo.Insert(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

func (s *userService) List(ctx context.Context, params query.ListParams) ([]model.User, *Pagination, error) {
	q, err := query.TranslateList(params)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	users := result.Data
	for i := range users {
		s.decorate(&users[i])
	}

	return users, &Pagination{
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		TotalUsers:  result.Total,
		HasNextPage: result.Page < result.TotalPages,
		HasPrevPage: result.Page > 1,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

// Update validates the partial payload and merges it field by field into the
// stored document. Absent fields stay untouched; system fields were already
// stripped by the validator.
func (s *userService) Update(ctx context.Context, id string, input map[string]any) (*model.User, error) {
	fields, err := s.validator.Validate(input, validation.Update)
	if err != nil {
		s.logger.Debug("update rejected by validation", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	user, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

// SoftDelete marks the user inactive. Idempotent: an already-inactive user is
// returned unchanged.
func (s *userService) SoftDelete(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.UpdateByID(ctx, id, bson.M{"activo": false})
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

func (s *userService) HardDelete(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

// Reactivate undoes a soft delete. Idempotent.
func (s *userService) Reactivate(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.UpdateByID(ctx, id, bson.M{"activo": true})
	if err != nil {
		return nil, err
	}
	return s.decorate(user), nil
}

// decorate fills the read-time projections of a stored user.
func (s *userService) decorate(user *model.User) *model.User {
	user.EdadCalculada = user.CalcularEdad(time.Now())
	return user
}
