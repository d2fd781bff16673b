package admin

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	adminrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/admin"
	txrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/thirdparty/mailer"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/token"
)

type AdminApp interface {
	Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)
	Profile(ctx context.Context, adminID string) (*model.AdminEntity, error)
	EditProfile(ctx context.Context, adminID string, req *model.EditAdminRequest) (*model.AdminEntity, error)
	ForgetPassword(ctx context.Context, req *model.ForgetPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
}

type adminAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	adminRepo adminrepo.AdminRepository
	mailer    mailer.Mailer
}

func NewAdminApp(config *config.Config, txRepo txrepo.TxRepository, adminRepo adminrepo.AdminRepository, mailer mailer.Mailer) AdminApp {
	return &adminAppImpl{
		config:    config,
		txRepo:    txRepo,
		adminRepo: adminRepo,
		mailer:    mailer,
	}
}

func (s *adminAppImpl) Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{Email: strings.ToLower(req.Email)})
	if err != nil {
		logger.Error("[AdminLogin] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	accessToken, err := token.GenerateAccessToken(s.config.Auth.JWTSecret,
		admin.ID, admin.Email, admin.Role, s.config.Auth.AccessExpiration)
	if err != nil {
		logger.Error("[AdminLogin] generate access token", zap.String("error", err.Error()))
		return nil, err
	}

	return &model.AdminLoginResponse{Token: accessToken, Admin: admin}, nil
}

func (s *adminAppImpl) Profile(ctx context.Context, adminID string) (*model.AdminEntity, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: adminID})
	if err != nil {
		logger.Error("[AdminProfile] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return admin, nil
}

func (s *adminAppImpl) EditProfile(ctx context.Context, adminID string, req *model.EditAdminRequest) (*model.AdminEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[EditAdminProfile] begin tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: adminID})
	if err != nil {
		logger.Error("[EditAdminProfile] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, err
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.Avatar != "" {
		admin.Avatar = req.Avatar
	}

	if err := s.adminRepo.UpdateProfileTx(ctx, tx, admin); err != nil {
		logger.Error("[EditAdminProfile] update profile", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[EditAdminProfile] commit tx", zap.String("error", err.Error()))
		return nil, err
	}
	committed = true
	return admin, nil
}

func (s *adminAppImpl) ForgetPassword(ctx context.Context, req *model.ForgetPasswordRequest) error {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{Email: strings.ToLower(req.Email)})
	if err != nil {
		logger.Error("[AdminForgetPassword] err adminRepo.Get", zap.String("error", err.Error()))
		return err
	}
	if admin == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	resetToken, err := token.GenerateActionToken(s.config.Auth.JWTSecret, admin.ID,
		constant.TokenPurposeResetPassword, s.config.Auth.ResetExpiration)
	if err != nil {
		logger.Error("[AdminForgetPassword] generate reset token", zap.String("error", err.Error()))
		return err
	}

	link := s.config.Reset.AdminRedirectURL + "?token=" + resetToken
	if err := s.mailer.SendPasswordResetEmail(admin.Email, link); err != nil {
		logger.Error("[AdminForgetPassword] send reset mail", zap.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *adminAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	claims, err := token.ParseActionToken(s.config.Auth.JWTSecret, req.Token, constant.TokenPurposeResetPassword)
	if err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AdminResetPassword] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: claims.Subject})
	if err != nil {
		logger.Error("[AdminResetPassword] err adminRepo.Get", zap.String("error", err.Error()))
		return err
	}
	if admin == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[AdminResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return err
	}

	if err := s.adminRepo.UpdatePasswordTx(ctx, tx, admin.ID, string(hashed)); err != nil {
		logger.Error("[AdminResetPassword] update password", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AdminResetPassword] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true
	return nil
}
