package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	appuser "github.com/kishoregurjar/lyrics-web-backend-sub000/application/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	mailermocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/mailer"
	txmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/tx"
	usermocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/user"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/token"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			AccessExpiration: time.Hour,
			VerifyExpiration: time.Hour,
			ResetExpiration:  5 * time.Minute,
		},
		Reset: config.ResetConfig{
			UserRedirectURL: "https://example.com/reset",
			UserVerifyURL:   "https://example.com/verify",
		},
	}
}

func mustActionToken(id, purpose string, expiration time.Duration) string {
	tok, err := token.GenerateActionToken("test-secret", id, purpose, expiration)
	if err != nil {
		panic(err)
	}
	return tok
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

func TestUserApp_Signup(t *testing.T) {
	type fields struct {
		config   *config.Config
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		mailer   *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.SignupRequest
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantEmail string
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: signup lowercases the email",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					FirstName: "Test",
					LastName:  "User",
					Email:     "Test@Example.COM",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()

				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "test@example.com" &&
							ent.Role == constant.RoleUser &&
							ent.IsActive &&
							!ent.IsVerified &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(nil).
					Once()

				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.mailer.
					On("SendVerificationEmail", "test@example.com", mock.AnythingOfType("string")).
					Return(nil).
					Once()
			},
			wantEmail: "test@example.com",
			wantErr:   false,
		},
		{
			name: "success: verification mail failure does not undo the signup",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					FirstName: "Test",
					Email:     "test@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()

				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("CreateTx", mock.Anything, tx, mock.AnythingOfType("*model.UserEntity")).
					Return(nil).
					Once()

				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.mailer.
					On("SendVerificationEmail", "test@example.com", mock.AnythingOfType("string")).
					Return(errors.New("smtp down")).
					Once()
			},
			wantEmail: "test@example.com",
			wantErr:   false,
		},
		{
			name: "error: email already exists aborts without writing",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					FirstName: "Test",
					Email:     "existing@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()

				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{ID: "u-1", Email: "existing@example.com"}, nil).
					Once()

				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: uniqueness read fails",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					FirstName: "Test",
					Email:     "test@example.com",
					Password:  "password123",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()

				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, errors.New("db error")).
					Once()

				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.mailer)

			got, err := app.Signup(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if tt.errCode != constant.Successful {
					var ce cerr.CustomError
					if !errors.As(err, &ce) {
						t.Fatalf("error type = %T, want CustomError", err)
					}
					if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
						t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
					}
				}
				return
			}

			if got.Email != tt.wantEmail {
				t.Fatalf("Signup() email = %s, want %s", got.Email, tt.wantEmail)
			}
			if got.ID == "" {
				t.Fatal("Signup() returned empty id")
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	passwordHash := mustHash("password123")

	type fields struct {
		config   *config.Config
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		mailer   *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login issues a token and bumps the api hit time",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "Test@Example.com", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           "u-1",
						Email:        "test@example.com",
						PasswordHash: passwordHash,
						IsActive:     true,
						Role:         constant.RoleUser,
					}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("TouchAPIHitTx", mock.Anything, tx, "u-1", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown email",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "missing@example.com", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "missing@example.com"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "test@example.com", Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           "u-1",
						Email:        "test@example.com",
						PasswordHash: passwordHash,
						IsActive:     true,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: deactivated account",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Email: "test@example.com", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:           "u-1",
						Email:        "test@example.com",
						PasswordHash: passwordHash,
						IsActive:     false,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountDeactivated,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.mailer)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Token == "" {
				t.Fatal("Login() returned empty token")
			}
			if got.User.LastAPIHitTime == nil {
				t.Fatal("Login() did not set last api hit time")
			}
		})
	}
}

func TestUserApp_VerifyEmail(t *testing.T) {
	type fields struct {
		config   *config.Config
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		mailer   *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.VerifyEmailRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first redemption marks the account verified",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyEmailRequest{
					Token: mustActionToken("u-1", constant.TokenPurposeVerifyEmail, time.Hour),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{ID: "u-1"}).
					Return(&model.UserEntity{ID: "u-1", IsVerified: false}, nil).
					Once()
				f.userRepo.On("MarkVerifiedTx", mock.Anything, tx, "u-1").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: second redemption is idempotent and skips the write",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyEmailRequest{
					Token: mustActionToken("u-1", constant.TokenPurposeVerifyEmail, time.Hour),
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{ID: "u-1"}).
					Return(&model.UserEntity{ID: "u-1", IsVerified: true}, nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: reset token cannot verify an email",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyEmailRequest{
					Token: mustActionToken("u-1", constant.TokenPurposeResetPassword, time.Hour),
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.mailer)

			err := app.VerifyEmail(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyEmail() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestUserApp_ResetPassword(t *testing.T) {
	type fields struct {
		config   *config.Config
		txRepo   *txmocks.TxRepository
		userRepo *usermocks.UserRepository
		mailer   *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.ResetPasswordRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: valid token re-hashes the password",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Token:       mustActionToken("u-1", constant.TokenPurposeResetPassword, 5*time.Minute),
					NewPassword: "newpassword",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.
					On("GetTx", mock.Anything, tx, &model.UserFilter{ID: "u-1"}).
					Return(&model.UserEntity{ID: "u-1"}, nil).
					Once()
				f.userRepo.
					On("UpdatePasswordTx", mock.Anything, tx, "u-1", mock.MatchedBy(func(hash string) bool {
						return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword")) == nil
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: expired link",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Token:       mustActionToken("u-1", constant.TokenPurposeResetPassword, -time.Minute),
					NewPassword: "newpassword",
				},
			},
			wantErr: true,
			errCode: constant.ErrExpiredLink,
		},
		{
			name: "error: tampered token",
			fields: fields{
				config:   testConfig(),
				txRepo:   txmocks.NewTxRepository(t),
				userRepo: usermocks.NewUserRepository(t),
				mailer:   mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Token:       mustActionToken("u-1", constant.TokenPurposeResetPassword, 5*time.Minute) + "x",
					NewPassword: "newpassword",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.txRepo, tt.fields.userRepo, tt.fields.mailer)

			err := app.ResetPassword(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
