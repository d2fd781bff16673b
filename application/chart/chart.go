package chart

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	chartrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/chart"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

type ChartApp interface {
	List(ctx context.Context) ([]model.TopChartEntity, error)
	Delete(ctx context.Context, id string) error
	Ingest(ctx context.Context, req *model.ChartIngestRequest) (int, error)
}

type chartAppImpl struct {
	txRepo    txrepo.TxRepository
	chartRepo chartrepo.ChartRepository
}

func NewChartApp(txRepo txrepo.TxRepository, chartRepo chartrepo.ChartRepository) ChartApp {
	return &chartAppImpl{
		txRepo:    txRepo,
		chartRepo: chartRepo,
	}
}

func (s *chartAppImpl) List(ctx context.Context) ([]model.TopChartEntity, error) {
	items, err := s.chartRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCharts] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *chartAppImpl) Delete(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteChart] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.chartRepo.GetTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteChart] get", zap.String("error", err.Error()))
		return err
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.chartRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteChart] delete", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteChart] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}

// Ingest upserts a batch of chart entries keyed by lfid. This is the only
// write path into the top-chart collection; it is fed by the ingest queue.
func (s *chartAppImpl) Ingest(ctx context.Context, req *model.ChartIngestRequest) (int, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[IngestCharts] begin tx", zap.String("error", err.Error()))
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	for _, entry := range req.Entries {
		entity := &model.TopChartEntity{
			ID:        uuid.NewString(),
			LFID:      entry.LFID,
			Title:     entry.Title,
			Artists:   entry.Artists,
			Duration:  entry.Duration,
			ISRC:      entry.ISRC,
			HasLRC:    entry.HasLRC,
			Copyright: entry.Copyright,
			Writer:    entry.Writer,
		}
		if err := s.chartRepo.UpsertTx(ctx, tx, entity); err != nil {
			logger.Error("[IngestCharts] upsert", zap.String("lfid", entry.LFID), zap.String("error", err.Error()))
			return 0, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[IngestCharts] commit tx", zap.String("error", err.Error()))
		return 0, err
	}
	committed = true
	return len(req.Entries), nil
}
