package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/admin"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/auth"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/chart"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/feedback"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/hotsong"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/music"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/news"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/testimonial"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/filestore"
)

// RestHandler holds the applications behind the HTTP surface.
type RestHandler struct {
	cfg       *config.Config
	fileStore filestore.FileStore

	authApp        auth.AuthApp
	userApp        user.UserApp
	adminApp       admin.AdminApp
	testimonialApp testimonial.TestimonialApp
	newsApp        news.NewsApp
	hotSongApp     hotsong.HotSongApp
	chartApp       chart.ChartApp
	feedbackApp    feedback.FeedbackApp
	musicApp       music.MusicApp
}

func NewRestHandler(
	cfg *config.Config,
	fileStore filestore.FileStore,
	authApp auth.AuthApp,
	userApp user.UserApp,
	adminApp admin.AdminApp,
	testimonialApp testimonial.TestimonialApp,
	newsApp news.NewsApp,
	hotSongApp hotsong.HotSongApp,
	chartApp chart.ChartApp,
	feedbackApp feedback.FeedbackApp,
	musicApp music.MusicApp,
) *RestHandler {
	return &RestHandler{
		cfg:            cfg,
		fileStore:      fileStore,
		authApp:        authApp,
		userApp:        userApp,
		adminApp:       adminApp,
		testimonialApp: testimonialApp,
		newsApp:        newsApp,
		hotSongApp:     hotSongApp,
		chartApp:       chartApp,
		feedbackApp:    feedbackApp,
		musicApp:       musicApp,
	}
}

// Router builds the full route table. Public routes are registered before
// the role-scoped subrouters so gorilla/mux matches them first.
func (s *RestHandler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware())

	api := router.PathPrefix("/api/v1").Subrouter()

	// public user surface
	api.HandleFunc("/user/create-user", s.Signup).Methods(http.MethodPost)
	api.HandleFunc("/user/login-user", s.Login).Methods(http.MethodPost)
	api.HandleFunc("/user/verify-user", s.VerifyEmail).Methods(http.MethodPost)
	api.HandleFunc("/user/forget-password", s.ForgetPassword).Methods(http.MethodPost)
	api.HandleFunc("/user/reset-password", s.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/user/submit-user-feedback", s.SubmitFeedback).Methods(http.MethodPost)
	api.HandleFunc("/user/get-testimonial", s.ListTestimonials).Methods(http.MethodGet)
	api.HandleFunc("/user/get-news-list", s.ListNews).Methods(http.MethodGet)
	api.HandleFunc("/user/get-news", s.GetNews).Methods(http.MethodGet)
	api.HandleFunc("/user/get-hot-songs", s.ListHotSongs).Methods(http.MethodGet)
	api.HandleFunc("/user/get-top-charts", s.ListTopCharts).Methods(http.MethodGet)
	api.HandleFunc("/user/get-charts", s.ProviderCharts).Methods(http.MethodGet)
	api.HandleFunc("/user/search", s.SearchTracks).Methods(http.MethodPost)
	api.HandleFunc("/user/get-lyrics-user", s.GetLyrics).Methods(http.MethodPost)
	api.HandleFunc("/user/artist/song", s.ArtistTopTracks).Methods(http.MethodGet)
	api.HandleFunc("/user/album/songs", s.AlbumTracks).Methods(http.MethodGet)
	api.HandleFunc("/user/artist-list", s.ArtistList).Methods(http.MethodGet)
	api.HandleFunc("/user/artist-albums", s.ArtistAlbums).Methods(http.MethodGet)
	api.HandleFunc("/user/artist-songs", s.ArtistSongs).Methods(http.MethodGet)
	api.HandleFunc("/user/albums-songs", s.AlbumSongs).Methods(http.MethodGet)

	// authenticated user surface
	userAuth := api.PathPrefix("/user").Subrouter()
	userAuth.Use(AuthMiddleware(s.authApp, constant.RoleUser))
	userAuth.HandleFunc("/edit-user", s.EditUser).Methods(http.MethodPost)
	userAuth.HandleFunc("/change-user-password", s.ChangePassword).Methods(http.MethodPost)

	// public admin surface
	api.HandleFunc("/admin/login-admin", s.AdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/forget-password", s.AdminForgetPassword).Methods(http.MethodPost)
	api.HandleFunc("/admin/reset-password", s.AdminResetPassword).Methods(http.MethodPut)

	// authenticated admin surface
	adminAuth := api.PathPrefix("/admin").Subrouter()
	adminAuth.Use(AuthMiddleware(s.authApp, constant.RoleAdmin, constant.RoleSuperAdmin))
	adminAuth.HandleFunc("/admin-profile", s.AdminProfile).Methods(http.MethodGet)
	adminAuth.HandleFunc("/edit-admin-profile", s.EditAdminProfile).Methods(http.MethodPut)
	adminAuth.HandleFunc("/add-testimonial", s.CreateTestimonial).Methods(http.MethodPost)
	adminAuth.HandleFunc("/get-testimonial-list", s.ListTestimonialsAdmin).Methods(http.MethodGet)
	adminAuth.HandleFunc("/edit-testimonial", s.UpdateTestimonial).Methods(http.MethodPut)
	adminAuth.HandleFunc("/delete-testimonial/{id}", s.DeleteTestimonial).Methods(http.MethodDelete)
	adminAuth.HandleFunc("/add-news", s.CreateNews).Methods(http.MethodPost)
	adminAuth.HandleFunc("/edit-news", s.UpdateNews).Methods(http.MethodPut)
	adminAuth.HandleFunc("/delete-news/{id}", s.DeleteNews).Methods(http.MethodDelete)
	adminAuth.HandleFunc("/add-hot-song", s.AddHotSong).Methods(http.MethodPost)
	adminAuth.HandleFunc("/get-hot-songs", s.ListHotSongs).Methods(http.MethodGet)
	adminAuth.HandleFunc("/delete-hot-song/{id}", s.DeleteHotSong).Methods(http.MethodDelete)
	adminAuth.HandleFunc("/get-top-charts", s.ListTopCharts).Methods(http.MethodGet)
	adminAuth.HandleFunc("/delete-top-chart/{id}", s.DeleteTopChart).Methods(http.MethodDelete)
	adminAuth.HandleFunc("/get-feedback-list", s.ListFeedback).Methods(http.MethodGet)
	adminAuth.HandleFunc("/upload-carousel", s.UploadCarousel).Methods(http.MethodPost)

	// internal surface, consumed by the chart ingest worker
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(s.cfg.Internal.APIKey))
	internal.HandleFunc("/chart/ingest", s.IngestCharts).Methods(http.MethodPost)

	// static uploads and swagger
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.cfg.Upload.BaseDir))))
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return router
}
