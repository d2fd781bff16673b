package transport

import (
	"encoding/json"
	"net/http"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	utilsContext "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/context"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	validatorx "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/validator"
)

// AdminLogin godoc
// @Summary Authenticate an admin and issue an access token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "login payload"
// @Success 200 {object} Envelope
// @Router /api/v1/admin/login-admin [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resp, err := s.adminApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Login successful", resp)
}

func (s *RestHandler) AdminProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	profile, err := s.adminApp.Profile(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", profile)
}

func (s *RestHandler) EditAdminProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	avatar, err := s.saveUpload(r, "avatar", constant.UploadDirAdmin)
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.EditAdminRequest{
		Name:   r.FormValue("name"),
		Avatar: avatar,
	}

	updated, err := s.adminApp.EditProfile(r.Context(), identity.ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Profile updated successfully", updated)
}

func (s *RestHandler) AdminForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.adminApp.ForgetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Reset link sent to your email", nil)
}

func (s *RestHandler) AdminResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.adminApp.ResetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Password reset successfully", nil)
}

func (s *RestHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := s.feedbackApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "success", list)
}

// UploadCarousel stores a standalone carousel image and returns its path.
func (s *RestHandler) UploadCarousel(w http.ResponseWriter, r *http.Request) {
	path, err := s.saveUpload(r, "image", constant.UploadDirCarousel)
	if err != nil {
		writeError(w, err)
		return
	}
	if path == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	writeSuccess(w, http.StatusCreated, true, "Image uploaded successfully", map[string]string{"path": path})
}
