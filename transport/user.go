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

// Signup godoc
// @Summary Register a new user account
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "signup payload"
// @Success 201 {object} Envelope
// @Router /api/v1/user/create-user [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resp, err := s.userApp.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, true, "User registered successfully", resp)
}

// Login godoc
// @Summary Authenticate a user and issue an access token
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "login payload"
// @Success 200 {object} Envelope
// @Router /api/v1/user/login-user [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	resp, err := s.userApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Login successful", resp)
}

// VerifyEmail flips the account to verified. Redeeming an already used
// link succeeds again with the same message.
func (s *RestHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.userApp.VerifyEmail(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Email verified successfully", nil)
}

// EditUser godoc
// @Summary Update the authenticated user's profile
// @Tags user
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Envelope
// @Router /api/v1/user/edit-user [post]
func (s *RestHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	avatar, err := s.saveUpload(r, "avatar", constant.UploadDirUsers)
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.EditUserRequest{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Mobile:    r.FormValue("mobile"),
		Avatar:    avatar,
	}

	updated, err := s.userApp.EditProfile(r.Context(), identity.ID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Profile updated successfully", updated)
}

func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := utilsContext.GetIdentity(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.userApp.ChangePassword(r.Context(), identity.ID, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Password changed successfully", nil)
}

func (s *RestHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.userApp.ForgetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Reset link sent to your email", nil)
}

func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.userApp.ResetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, true, "Password reset successfully", nil)
}

// SubmitFeedback godoc
// @Summary Submit a feedback form entry
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.SubmitFeedbackRequest true "feedback payload"
// @Success 201 {object} Envelope
// @Router /api/v1/user/submit-user-feedback [post]
func (s *RestHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w)
		return
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	created, err := s.feedbackApp.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, true, "Feedback submitted successfully", created)
}
