package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	userrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/mailer"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/token"
)

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) error
	EditProfile(ctx context.Context, userID string, req *model.EditUserRequest) (*model.UserEntity, error)
	ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error
	ForgetPassword(ctx context.Context, req *model.ForgetPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
}

type userAppImpl struct {
	config   *config.Config
	txRepo   txrepo.TxRepository
	userRepo userrepo.UserRepository
	mailer   mailer.Mailer
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, mailer mailer.Mailer) UserApp {
	return &userAppImpl{
		config:   config,
		txRepo:   txRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

func (s *userAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResponse, error) {
	email := strings.ToLower(req.Email)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Signup] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Signup] err userRepo.GetTx", zap.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, err
	}

	entity := &model.UserEntity{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Mobile:       req.Mobile,
		PasswordHash: string(hashed),
		IsActive:     true,
		IsVerified:   false,
		Role:         constant.RoleUser,
	}

	if err := s.userRepo.CreateTx(ctx, tx, entity); err != nil {
		logger.Error("[Signup] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Signup] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true

	// Verification mail is outside the transaction boundary. A send failure
	// does not undo the signup.
	verifyToken, err := token.GenerateActionToken(s.config.Auth.JWTSecret, entity.ID,
		constant.TokenPurposeVerifyEmail, s.config.Auth.VerifyExpiration)
	if err != nil {
		logger.Error("[Signup] generate verify token", zap.String("error", err.Error()))
	} else if err := s.mailer.SendVerificationEmail(email, s.config.Reset.UserVerifyURL+"?token="+verifyToken); err != nil {
		logger.Error("[Signup] send verification mail", zap.String("error", err.Error()))
	}

	return &model.SignupResponse{ID: entity.ID, Email: entity.Email}, nil
}

func (s *userAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if !user.IsActive {
		return nil, errors.SetCustomError(constant.ErrAccountDeactivated)
	}

	accessToken, err := token.GenerateAccessToken(s.config.Auth.JWTSecret,
		user.ID, user.Email, user.Role, s.config.Auth.AccessExpiration)
	if err != nil {
		logger.Error("[Login] generate access token", zap.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Login] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := time.Now()
	if err := s.userRepo.TouchAPIHitTx(ctx, tx, user.ID, now); err != nil {
		logger.Error("[Login] touch api hit", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Login] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true

	user.LastAPIHitTime = &now
	return &model.LoginResponse{Token: accessToken, User: user}, nil
}

// VerifyEmail is idempotent: a valid token against an already-verified
// account reports success and leaves the flag set.
func (s *userAppImpl) VerifyEmail(ctx context.Context, req *model.VerifyEmailRequest) error {
	claims, err := token.ParseActionToken(s.config.Auth.JWTSecret, req.Token, constant.TokenPurposeVerifyEmail)
	if err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VerifyEmail] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[VerifyEmail] err userRepo.GetTx", zap.String("error", err.Error()))
		return err
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if !user.IsVerified {
		if err := s.userRepo.MarkVerifiedTx(ctx, tx, user.ID); err != nil {
			logger.Error("[VerifyEmail] mark verified", zap.String("error", err.Error()))
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VerifyEmail] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}

func (s *userAppImpl) EditProfile(ctx context.Context, userID string, req *model.EditUserRequest) (*model.UserEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[EditProfile] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[EditProfile] err userRepo.GetTx", zap.String("error", err.Error()))
		return nil, err
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.userRepo.UpdateProfileTx(ctx, tx, user); err != nil {
		logger.Error("[EditProfile] update profile", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[EditProfile] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return user, nil
}

func (s *userAppImpl) ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ChangePassword] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.GetTx", zap.String("error", err.Error()))
		return err
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ChangePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return err
	}

	if err := s.userRepo.UpdatePasswordTx(ctx, tx, user.ID, string(hashed)); err != nil {
		logger.Error("[ChangePassword] update password", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ChangePassword] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}

func (s *userAppImpl) ForgetPassword(ctx context.Context, req *model.ForgetPasswordRequest) error {
	email := strings.ToLower(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return err
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	resetToken, err := token.GenerateActionToken(s.config.Auth.JWTSecret, user.ID,
		constant.TokenPurposeResetPassword, s.config.Auth.ResetExpiration)
	if err != nil {
		logger.Error("[ForgetPassword] generate reset token", zap.String("error", err.Error()))
		return err
	}

	link := s.config.Reset.UserRedirectURL + "?token=" + resetToken
	if err := s.mailer.SendPasswordResetEmail(user.Email, link); err != nil {
		logger.Error("[ForgetPassword] send reset mail", zap.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *userAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	claims, err := token.ParseActionToken(s.config.Auth.JWTSecret, req.Token, constant.TokenPurposeResetPassword)
	if err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResetPassword] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetTx(ctx, tx, &model.UserFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.GetTx", zap.String("error", err.Error()))
		return err
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return err
	}

	if err := s.userRepo.UpdatePasswordTx(ctx, tx, user.ID, string(hashed)); err != nil {
		logger.Error("[ResetPassword] update password", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResetPassword] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}
