package auth

import (
	"context"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	adminrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/admin"
	userrepo "github.com/kishoregurjar/lyrics-web-backend-sub000/repository/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/logger"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/token"
	"go.uber.org/zap"
)

// AuthApp resolves a bearer token to a live, role-tagged identity. One
// verification step serves both the user and admin guards.
type AuthApp interface {
	Authenticate(ctx context.Context, tokenString string) (*model.Identity, error)
}

type authAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	adminRepo adminrepo.AdminRepository
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, adminRepo adminrepo.AdminRepository) AuthApp {
	return &authAppImpl{
		config:    config,
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

func (s *authAppImpl) Authenticate(ctx context.Context, tokenString string) (*model.Identity, error) {
	claims, err := token.ParseAccessToken(s.config.Auth.JWTSecret, tokenString)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	switch claims.Role {
	case constant.RoleUser:
		user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: claims.Subject})
		if err != nil {
			logger.Error("[Authenticate] err userRepo.Get", zap.String("error", err.Error()))
			return nil, err
		}
		if user == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if !user.IsActive {
			return nil, errors.SetCustomError(constant.ErrAccountDeactivated)
		}
		return &model.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil

	case constant.RoleAdmin, constant.RoleSuperAdmin:
		admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: claims.Subject})
		if err != nil {
			logger.Error("[Authenticate] err adminRepo.Get", zap.String("error", err.Error()))
			return nil, err
		}
		if admin == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return &model.Identity{ID: admin.ID, Email: admin.Email, Role: admin.Role}, nil
	}

	return nil, errors.SetCustomError(constant.ErrUnauthorize)
}
