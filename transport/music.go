package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	validatorx "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/validator"
)

// SearchTracks godoc
// @Summary Free-text track search against the metadata provider
// @Tags music
// @Accept json
// @Produce json
// @Param request body model.SearchRequest true "search payload"
// @Success 200 {object} Envelope
// @Router /api/v1/user/search [post]
func (s *RestHandler) SearchTracks(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	tracks, err := s.musicApp.Search(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", tracks)
}

// GetLyrics godoc
// @Summary Fetch lyrics by provider track id or raw ISRC
// @Tags music
// @Accept json
// @Produce json
// @Param request body model.LyricsRequest true "lyrics payload"
// @Success 200 {object} Envelope
// @Router /api/v1/user/get-lyrics-user [post]
func (s *RestHandler) GetLyrics(w http.ResponseWriter, r *http.Request) {
	var req model.LyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	lyrics, err := s.musicApp.GetLyrics(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", lyrics)
}

func (s *RestHandler) ArtistTopTracks(w http.ResponseWriter, r *http.Request) {
	artistID := r.URL.Query().Get("artist_id")
	if artistID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	tracks, err := s.musicApp.ArtistTopTracks(r.Context(), artistID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", tracks)
}

func (s *RestHandler) AlbumTracks(w http.ResponseWriter, r *http.Request) {
	albumID := r.URL.Query().Get("album_id")
	if albumID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	tracks, err := s.musicApp.AlbumTracks(r.Context(), albumID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", tracks)
}

// ProviderCharts returns the lyrics provider's current chart listing.
func (s *RestHandler) ProviderCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := s.musicApp.Charts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", charts)
}

func (s *RestHandler) ArtistList(w http.ResponseWriter, r *http.Request) {
	artists, err := s.musicApp.ArtistList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", artists)
}

func (s *RestHandler) ArtistAlbums(w http.ResponseWriter, r *http.Request) {
	artistID, err := catalogueID(r, "artist_id")
	if err != nil {
		writeError(w, err)
		return
	}

	albums, err := s.musicApp.ArtistAlbums(r.Context(), artistID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", albums)
}

func (s *RestHandler) ArtistSongs(w http.ResponseWriter, r *http.Request) {
	artistID, err := catalogueID(r, "artist_id")
	if err != nil {
		writeError(w, err)
		return
	}

	songs, err := s.musicApp.ArtistSongs(r.Context(), artistID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", songs)
}

func (s *RestHandler) AlbumSongs(w http.ResponseWriter, r *http.Request) {
	albumID, err := catalogueID(r, "album_id")
	if err != nil {
		writeError(w, err)
		return
	}

	songs, err := s.musicApp.AlbumSongs(r.Context(), albumID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", songs)
}

func catalogueID(r *http.Request, param string) (int64, error) {
	raw := r.URL.Query().Get(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
