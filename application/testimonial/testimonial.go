package testimonial

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	testimonialrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/testimonial"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/filestore"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

type TestimonialApp interface {
	Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.TestimonialEntity, error)
	ListPublic(ctx context.Context) ([]model.TestimonialEntity, error)
	ListAdmin(ctx context.Context) ([]model.TestimonialEntity, error)
	Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.TestimonialEntity, error)
	Delete(ctx context.Context, id string, hard bool) error
}

type testimonialAppImpl struct {
	txRepo          txrepo.TxRepository
	testimonialRepo testimonialrepo.TestimonialRepository
	fileStore       filestore.FileStore
}

func NewTestimonialApp(txRepo txrepo.TxRepository, testimonialRepo testimonialrepo.TestimonialRepository, fileStore filestore.FileStore) TestimonialApp {
	return &testimonialAppImpl{
		txRepo:          txRepo,
		testimonialRepo: testimonialRepo,
		fileStore:       fileStore,
	}
}

func (s *testimonialAppImpl) Create(ctx context.Context, req *model.CreateTestimonialRequest) (*model.TestimonialEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateTestimonial] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := &model.TestimonialEntity{
		ID:          uuid.NewString(),
		FullName:    req.FullName,
		Rating:      req.Rating,
		Description: req.Description,
		Avatar:      req.Avatar,
		IsActive:    true,
	}

	if err := s.testimonialRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateTestimonial] create", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateTestimonial] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

func (s *testimonialAppImpl) ListPublic(ctx context.Context) ([]model.TestimonialEntity, error) {
	items, err := s.testimonialRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[ListTestimonials] list active", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *testimonialAppImpl) ListAdmin(ctx context.Context) ([]model.TestimonialEntity, error) {
	items, err := s.testimonialRepo.List(ctx)
	if err != nil {
		logger.Error("[ListTestimonials] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *testimonialAppImpl) Update(ctx context.Context, req *model.UpdateTestimonialRequest) (*model.TestimonialEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateTestimonial] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.testimonialRepo.GetTx(ctx, tx, req.ID)
	if err != nil {
		logger.Error("[UpdateTestimonial] get", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.FullName != "" {
		entity.FullName = req.FullName
	}
	if req.Rating != 0 {
		entity.Rating = req.Rating
	}
	if req.Description != "" {
		entity.Description = req.Description
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	if err := s.testimonialRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateTestimonial] update", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateTestimonial] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

// Delete soft-deletes by default; a hard delete also removes the avatar file
// after the commit. File cleanup never rolls back the committed change.
func (s *testimonialAppImpl) Delete(ctx context.Context, id string, hard bool) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteTestimonial] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.testimonialRepo.GetTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteTestimonial] get", zap.String("error", err.Error()))
		return err
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if hard {
		err = s.testimonialRepo.HardDeleteTx(ctx, tx, id)
	} else {
		err = s.testimonialRepo.SoftDeleteTx(ctx, tx, id)
	}
	if err != nil {
		logger.Error("[DeleteTestimonial] delete", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteTestimonial] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	if hard && entity.Avatar != "" {
		if err := s.fileStore.Remove(entity.Avatar); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("[DeleteTestimonial] avatar already absent", zap.String("path", entity.Avatar))
			} else {
				logger.Error("[DeleteTestimonial] remove avatar", zap.String("error", err.Error()))
			}
		}
	}
	return nil
}
