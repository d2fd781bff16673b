package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	validatorx "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/validator"
)

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} Envelope
// @Router /api/v1/admin/add-testimonial [post]
func (s *RestHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	avatar, err := s.saveUpload(r, "avatar", constant.UploadDirTestimonials)
	if err != nil {
		writeError(w, err)
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	req := model.CreateTestimonialRequest{
		FullName:    r.FormValue("full_name"),
		Rating:      rating,
		Description: r.FormValue("description"),
		Avatar:      avatar,
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := s.testimonialApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, true, "Testimonial created successfully", created)
}

func (s *RestHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := s.testimonialApp.ListPublic(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

func (s *RestHandler) ListTestimonialsAdmin(w http.ResponseWriter, r *http.Request) {
	list, err := s.testimonialApp.ListAdmin(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

func (s *RestHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := s.testimonialApp.Update(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Testimonial updated successfully", updated)
}

// DeleteTestimonial soft deletes by default; ?hard=true removes the row and
// its avatar file.
func (s *RestHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	hard := r.URL.Query().Get("hard") == "true"

	if err := s.testimonialApp.Delete(r.Context(), id, hard); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Testimonial deleted successfully", nil)
}

// CreateNews godoc
// @Summary Create a news article
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} Envelope
// @Router /api/v1/admin/add-news [post]
func (s *RestHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	cover, err := s.saveUpload(r, "cover_img", constant.UploadDirNews)
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.CreateNewsRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
		PublishDate: r.FormValue("publish_date"),
		CoverImg:    cover,
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := s.newsApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, true, "News created successfully", created)
}

func (s *RestHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	list, err := s.newsApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

func (s *RestHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	item, err := s.newsApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", item)
}

func (s *RestHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	updated, err := s.newsApp.Update(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "News updated successfully", updated)
}

func (s *RestHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.newsApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "News deleted successfully", nil)
}

// AddHotSong godoc
// @Summary Add a curated hot song by ISRC
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.AddHotSongRequest true "hot song payload"
// @Success 201 {object} Envelope
// @Router /api/v1/admin/add-hot-song [post]
func (s *RestHandler) AddHotSong(w http.ResponseWriter, r *http.Request) {
	var req model.AddHotSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := s.hotSongApp.Add(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, true, "Hot song added successfully", created)
}

func (s *RestHandler) ListHotSongs(w http.ResponseWriter, r *http.Request) {
	list, err := s.hotSongApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

func (s *RestHandler) DeleteHotSong(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.hotSongApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Hot song deleted successfully", nil)
}

func (s *RestHandler) ListTopCharts(w http.ResponseWriter, r *http.Request) {
	list, err := s.chartApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

func (s *RestHandler) DeleteTopChart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.chartApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Top chart deleted successfully", nil)
}

// IngestCharts is the internal endpoint fed by the queue consumer. Entries
// are upserted by provider id inside one transaction.
func (s *RestHandler) IngestCharts(w http.ResponseWriter, r *http.Request) {
	var req model.ChartIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	count, err := s.chartApp.Ingest(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Charts ingested successfully", map[string]int{"ingested": count})
}
