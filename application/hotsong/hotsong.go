package hotsong

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	hotsongrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/hotsong"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/spotify"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

type HotSongApp interface {
	Add(ctx context.Context, req *model.AddHotSongRequest) (*model.HotSongEntity, error)
	List(ctx context.Context) ([]model.HotSongEntity, error)
	Delete(ctx context.Context, id string) error
}

type hotSongAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	hotSongRepo hotsongrepo.HotSongRepository
	spotify     spotify.Client
}

func NewHotSongApp(config *config.Config, txRepo txrepo.TxRepository, hotSongRepo hotsongrepo.HotSongRepository, spotify spotify.Client) HotSongApp {
	return &hotSongAppImpl{
		config:      config,
		txRepo:      txRepo,
		hotSongRepo: hotSongRepo,
		spotify:     spotify,
	}
}

// Add looks the ISRC up with the metadata provider and persists the first
// matching track. The ceiling of 8 live entries is checked inside the same
// transaction as the insert.
func (s *hotSongAppImpl) Add(ctx context.Context, req *model.AddHotSongRequest) (*model.HotSongEntity, error) {
	track, err := s.spotify.SearchByISRC(ctx, req.ISRC)
	if err != nil {
		logger.Error("[AddHotSong] isrc search", zap.String("error", err.Error()))
		return nil, err
	}
	if track == nil {
		return nil, errors.SetCustomError(constant.ErrTrackNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddHotSong] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	count, err := s.hotSongRepo.CountTx(ctx, tx)
	if err != nil {
		logger.Error("[AddHotSong] count", zap.String("error", err.Error()))
		return nil, err
	}
	if count >= constant.MaxHotSongs {
		return nil, errors.SetCustomError(constant.ErrHotSongLimit)
	}

	territory := req.Territory
	if territory == "" {
		territory = s.config.LyricFind.Territory
	}

	entity := &model.HotSongEntity{
		ID:          uuid.NewString(),
		Images:      track.Images,
		Name:        track.Name,
		ReleaseDate: track.ReleaseDate,
		Artists:     track.Artists,
		ISRC:        track.ISRC,
		Album:       track.Album,
		Genre:       req.Genre,
		Duration:    track.DurationMs,
		SpotifyURL:  track.SpotifyURL,
		Territory:   territory,
	}

	if err := s.hotSongRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[AddHotSong] create", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddHotSong] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return entity, nil
}

func (s *hotSongAppImpl) List(ctx context.Context) ([]model.HotSongEntity, error) {
	items, err := s.hotSongRepo.List(ctx)
	if err != nil {
		logger.Error("[ListHotSongs] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *hotSongAppImpl) Delete(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteHotSong] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.hotSongRepo.GetTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteHotSong] get", zap.String("error", err.Error()))
		return err
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.hotSongRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteHotSong] delete", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteHotSong] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}
