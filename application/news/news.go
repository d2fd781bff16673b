package news

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	newsrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/news"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/filestore"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

const publishDateLayout = "2006-01-02"

type NewsApp interface {
	Create(ctx context.Context, req *model.CreateNewsRequest) (*model.NewsEntity, error)
	List(ctx context.Context) ([]model.NewsEntity, error)
	Get(ctx context.Context, id string) (*model.NewsEntity, error)
	Update(ctx context.Context, req *model.UpdateNewsRequest) (*model.NewsEntity, error)
	Delete(ctx context.Context, id string) error
}

type newsAppImpl struct {
	txRepo    txrepo.TxRepository
	newsRepo  newsrepo.NewsRepository
	fileStore filestore.FileStore
}

func NewNewsApp(txRepo txrepo.TxRepository, newsRepo newsrepo.NewsRepository, fileStore filestore.FileStore) NewsApp {
	return &newsAppImpl{
		txRepo:    txRepo,
		newsRepo:  newsRepo,
		fileStore: fileStore,
	}
}

// Create enforces the ceiling of 10 live entries. The count and the insert
// run in the same transaction so concurrent creates cannot jointly exceed it.
func (s *newsAppImpl) Create(ctx context.Context, req *model.CreateNewsRequest) (*model.NewsEntity, error) {
	publishDate, err := time.Parse(publishDateLayout, req.PublishDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateNews] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	count, err := s.newsRepo.CountLiveTx(ctx, tx)
	if err != nil {
		logger.Error("[CreateNews] count live", zap.String("error", err.Error()))
		return nil, err
	}
	if count >= constant.MaxNews {
		return nil, errors.SetCustomError(constant.ErrNewsLimit)
	}

	entity := &model.NewsEntity{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		PublishDate: publishDate,
		CoverImg:    req.CoverImg,
	}

	if err := s.newsRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[CreateNews] create", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateNews] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

func (s *newsAppImpl) List(ctx context.Context) ([]model.NewsEntity, error) {
	items, err := s.newsRepo.List(ctx)
	if err != nil {
		logger.Error("[ListNews] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *newsAppImpl) Get(ctx context.Context, id string) (*model.NewsEntity, error) {
	entity, err := s.newsRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetNews] get", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *newsAppImpl) Update(ctx context.Context, req *model.UpdateNewsRequest) (*model.NewsEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateNews] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.newsRepo.GetTx(ctx, tx, req.ID)
	if err != nil {
		logger.Error("[UpdateNews] get", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Title != "" {
		entity.Title = req.Title
	}
	if req.Description != "" {
		entity.Description = req.Description
	}
	if req.Author != "" {
		entity.Author = req.Author
	}
	if req.PublishDate != "" {
		publishDate, err := time.Parse(publishDateLayout, req.PublishDate)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		entity.PublishDate = publishDate
	}

	if err := s.newsRepo.UpdateTx(ctx, tx, entity); err != nil {
		logger.Error("[UpdateNews] update", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateNews] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

// Delete soft-deletes the document and then removes the cover image.
// A missing file is tolerated; cleanup errors never undo the commit.
func (s *newsAppImpl) Delete(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteNews] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.newsRepo.GetTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteNews] get", zap.String("error", err.Error()))
		return err
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.newsRepo.SoftDeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteNews] delete", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteNews] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	if entity.CoverImg != "" {
		if err := s.fileStore.Remove(entity.CoverImg); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("[DeleteNews] cover already absent", zap.String("path", entity.CoverImg))
			} else {
				logger.Error("[DeleteNews] remove cover", zap.String("error", err.Error()))
			}
		}
	}
	return nil
}
