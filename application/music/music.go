package music

import (
	"context"

	"go.uber.org/zap"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	artistrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/artist"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/lyricfind"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/spotify"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
)

// Metadata-provider track ids are 22 characters; anything else is treated
// as a raw ISRC and skips the resolution step.
const spotifyTrackIDLength = 22

type MusicApp interface {
	Search(ctx context.Context, req *model.SearchRequest) ([]model.TrackResult, error)
	GetLyrics(ctx context.Context, req *model.LyricsRequest) (*model.LyricsResult, error)
	ArtistTopTracks(ctx context.Context, artistID string) ([]model.SpotifyTrack, error)
	AlbumTracks(ctx context.Context, albumID string) ([]model.SpotifyTrack, error)
	Charts(ctx context.Context) ([]model.ChartTrackResult, error)
	ArtistList(ctx context.Context) ([]model.ArtistDetailEntity, error)
	ArtistAlbums(ctx context.Context, artistID int64) ([]model.ArtistAlbumEntity, error)
	ArtistSongs(ctx context.Context, artistID int64) ([]model.ArtistSongEntity, error)
	AlbumSongs(ctx context.Context, albumID int64) ([]model.ArtistSongEntity, error)
}

type musicAppImpl struct {
	spotify    spotify.Client
	lyricfind  lyricfind.Client
	artistRepo artistrepo.ArtistRepository
}

func NewMusicApp(spotify spotify.Client, lyricfind lyricfind.Client, artistRepo artistrepo.ArtistRepository) MusicApp {
	return &musicAppImpl{
		spotify:    spotify,
		lyricfind:  lyricfind,
		artistRepo: artistRepo,
	}
}

func (s *musicAppImpl) Search(ctx context.Context, req *model.SearchRequest) ([]model.TrackResult, error) {
	results, err := s.spotify.SearchTracks(ctx, req.Query, req.Limit)
	if err != nil {
		logger.Error("[Search] track search", zap.String("error", err.Error()))
		return nil, err
	}
	return results, nil
}

// GetLyrics accepts a 22-character provider track id or a raw ISRC. The
// former costs one extra lookup to resolve the ISRC before the lyrics fetch.
func (s *musicAppImpl) GetLyrics(ctx context.Context, req *model.LyricsRequest) (*model.LyricsResult, error) {
	isrc := req.ID
	if len(req.ID) == spotifyTrackIDLength {
		track, err := s.spotify.TrackByID(ctx, req.ID)
		if err != nil {
			logger.Error("[GetLyrics] resolve track", zap.String("error", err.Error()))
			return nil, err
		}
		if track == nil || track.ISRC == "" {
			return nil, errors.SetCustomError(constant.ErrTrackNotFound)
		}
		isrc = track.ISRC
	}

	result, err := s.lyricfind.Lyrics(ctx, isrc)
	if err != nil {
		logger.Error("[GetLyrics] lyrics fetch", zap.String("error", err.Error()))
		return nil, err
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNoLyrics)
	}
	return result, nil
}

func (s *musicAppImpl) ArtistTopTracks(ctx context.Context, artistID string) ([]model.SpotifyTrack, error) {
	tracks, err := s.spotify.ArtistTopTracks(ctx, artistID)
	if err != nil {
		logger.Error("[ArtistTopTracks] fetch", zap.String("error", err.Error()))
		return nil, err
	}
	return tracks, nil
}

func (s *musicAppImpl) AlbumTracks(ctx context.Context, albumID string) ([]model.SpotifyTrack, error) {
	tracks, err := s.spotify.AlbumTracks(ctx, albumID)
	if err != nil {
		logger.Error("[AlbumTracks] fetch", zap.String("error", err.Error()))
		return nil, err
	}
	return tracks, nil
}

func (s *musicAppImpl) Charts(ctx context.Context) ([]model.ChartTrackResult, error) {
	results, err := s.lyricfind.Charts(ctx)
	if err != nil {
		logger.Error("[Charts] fetch", zap.String("error", err.Error()))
		return nil, err
	}
	return results, nil
}

func (s *musicAppImpl) ArtistList(ctx context.Context) ([]model.ArtistDetailEntity, error) {
	items, err := s.artistRepo.ListArtists(ctx)
	if err != nil {
		logger.Error("[ArtistList] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *musicAppImpl) ArtistAlbums(ctx context.Context, artistID int64) ([]model.ArtistAlbumEntity, error) {
	items, err := s.artistRepo.ListAlbumsByArtist(ctx, artistID)
	if err != nil {
		logger.Error("[ArtistAlbums] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *musicAppImpl) ArtistSongs(ctx context.Context, artistID int64) ([]model.ArtistSongEntity, error) {
	items, err := s.artistRepo.ListSongsByArtist(ctx, artistID)
	if err != nil {
		logger.Error("[ArtistSongs] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}

func (s *musicAppImpl) AlbumSongs(ctx context.Context, albumID int64) ([]model.ArtistSongEntity, error) {
	items, err := s.artistRepo.ListSongsByAlbum(ctx, albumID)
	if err != nil {
		logger.Error("[AlbumSongs] list", zap.String("error", err.Error()))
		return nil, err
	}
	return items, nil
}
