package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmario91/GeneracionWidget-Back/internal/db"
	"github.com/jmario91/GeneracionWidget-Back/internal/model"
	"github.com/jmario91/GeneracionWidget-Back/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrInvalidID means the caller passed an identifier that is not a valid
	// ObjectID hex string. Distinguishable from ErrNotFound on purpose.
	ErrInvalidID = errors.New("id de usuario inválido")
	// ErrNotFound means the id was well formed but no document matches it.
	ErrNotFound = errors.New("usuario no encontrado")
	// ErrDuplicateEmail means the unique index on email rejected the write.
	ErrDuplicateEmail = errors.New("email duplicado")
)

const (
	defaultWriteTimeout = 5 * time.Second
	defaultReadTimeout  = 10 * time.Second
)

// UserRepository is the storage contract the service layer depends on. All
// collaborator failures are classified into the sentinel errors above before
// they leave this package.
type UserRepository interface {
	Insert(ctx context.Context, fields bson.M) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, q query.ListQuery) (*db.PaginatedResult[model.User], error)
	UpdateByID(ctx context.Context, id string, fields bson.M) (*model.User, error)
	DeleteByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	con       *mongo.Database
	mongoRepo *db.Repository[model.User]
	logger    *zap.Logger
}

func NewUserRepository(con *mongo.Database, mongoRepo *db.Repository[model.User], logger *zap.Logger) UserRepository {
	return &userRepository{
		con:       con,
		mongoRepo: mongoRepo,
		logger:    logger,
	}
}

// Insert stores a new user document. Creation timestamps are assigned here;
// the unique index on email enforces uniqueness.
func (r *userRepository) Insert(ctx context.Context, fields bson.M) (*model.User, error) {
	ctx, cancel := r.ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	now := time.Now().UTC()
	fields["createdAt"] = now
	fields["updatedAt"] = now

	id, err := r.mongoRepo.Create(ctx, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		r.logger.Error("failed to insert user", zap.Error(err))
		return nil, fmt.Errorf("insert user failed: %w", err)
	}

	user, err := r.mongoRepo.FindByID(ctx, id)
	if err != nil {
		r.logger.Error("failed to read back inserted user",
			zap.String("id", id.Hex()), zap.Error(err))
		return nil, fmt.Errorf("read inserted user failed: %w", err)
	}

	r.logger.Info("user created", zap.String("id", id.Hex()))
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := r.ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	user, err := r.mongoRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, r.classifyReadError(err, id)
	}
	return user, nil
}

// List executes the translated query with the fixed sort order, newest first.
func (r *userRepository) List(ctx context.Context, q query.ListQuery) (*db.PaginatedResult[model.User], error) {
	ctx, cancel := r.ensureTimeout(ctx, defaultReadTimeout)
	defer cancel()

	result, err := r.mongoRepo.FindWithPagination(ctx, q.Filter, db.PaginationParams{
		Page:     q.Page,
		PageSize: q.Limit,
		SortBy:   "createdAt",
		SortDesc: true,
	})
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users failed: %w", err)
	}

	r.logger.Debug("users listed",
		zap.Int("count", len(result.Data)),
		zap.Int64("total", result.Total),
		zap.Int64("page", result.Page),
	)
	return result, nil
}

// UpdateByID applies a field-by-field $set and returns the updated document.
func (r *userRepository) UpdateByID(ctx context.Context, id string, fields bson.M) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := r.ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	fields["updatedAt"] = time.Now().UTC()

	user, err := r.mongoRepo.FindOneAndUpdateByID(ctx, objectID, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, r.classifyReadError(err, id)
	}

	r.logger.Info("user updated", zap.String("id", id))
	return user, nil
}

// DeleteByID permanently removes the document and returns it as stored.
func (r *userRepository) DeleteByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := r.ensureTimeout(ctx, defaultWriteTimeout)
	defer cancel()

	user, err := r.mongoRepo.FindOneAndDeleteByID(ctx, objectID)
	if err != nil {
		return nil, r.classifyReadError(err, id)
	}

	r.logger.Info("user permanently deleted", zap.String("id", id))
	return user, nil
}

func (r *userRepository) classifyReadError(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	r.logger.Error("user read failed", zap.String("id", id), zap.Error(err))
	return fmt.Errorf("user read failed: %w", err)
}

func (r *userRepository) ensureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hadDeadline := ctx.Deadline(); hadDeadline {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
