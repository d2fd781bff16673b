package news_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appnews "github.com/kishoregurjar/lyrics-web-backend-sub000/application/news"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	filestoremocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/filestore"
	newsmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/news"
	txmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestNewsApp_Create(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		newsRepo  *newsmocks.NewsRepository
		fileStore *filestoremocks.FileStore
	}
	type args struct {
		ctx context.Context
		req *model.CreateNewsRequest
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
			name: "success: create below the ceiling",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				newsRepo:  newsmocks.NewNewsRepository(t),
				fileStore: filestoremocks.NewFileStore(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateNewsRequest{
					Title:       "Release week",
					Description: "New albums this week",
					Author:      "Editorial",
					PublishDate: "2026-09-01",
					CoverImg:    "/uploads/news/cover.png",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.newsRepo.On("CountLiveTx", mock.Anything, tx).Return(int64(3), nil).Once()
				f.newsRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.NewsEntity) bool {
						return ent.Title == "Release week" &&
							ent.PublishDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) &&
							ent.CoverImg == "/uploads/news/cover.png"
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: eleventh live entry is rejected without a write",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				newsRepo:  newsmocks.NewNewsRepository(t),
				fileStore: filestoremocks.NewFileStore(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateNewsRequest{
					Title:       "One too many",
					Description: "d",
					Author:      "a",
					PublishDate: "2026-09-01",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.newsRepo.On("CountLiveTx", mock.Anything, tx).Return(int64(10), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNewsLimit,
		},
		{
			name: "error: malformed publish date never touches storage",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				newsRepo:  newsmocks.NewNewsRepository(t),
				fileStore: filestoremocks.NewFileStore(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateNewsRequest{
					Title:       "Bad date",
					Description: "d",
					Author:      "a",
					PublishDate: "01/09/2026",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appnews.NewNewsApp(tt.fields.txRepo, tt.fields.newsRepo, tt.fields.fileStore)

			got, err := app.Create(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID == "" {
				t.Fatal("Create() returned empty id")
			}
		})
	}
}

func TestNewsApp_Delete(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		newsRepo  *newsmocks.NewsRepository
		fileStore *filestoremocks.FileStore
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: missing cover file does not undo the delete",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				newsRepo:  newsmocks.NewNewsRepository(t),
				fileStore: filestoremocks.NewFileStore(t),
			},
			id: "n-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.newsRepo.
					On("GetTx", mock.Anything, tx, "n-1").
					Return(&model.NewsEntity{ID: "n-1", CoverImg: "/uploads/news/gone.png"}, nil).
					Once()
				f.newsRepo.On("SoftDeleteTx", mock.Anything, tx, "n-1").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.fileStore.On("Remove", "/uploads/news/gone.png").Return(os.ErrNotExist).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown id",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				newsRepo:  newsmocks.NewNewsRepository(t),
				fileStore: filestoremocks.NewFileStore(t),
			},
			id: "missing",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.newsRepo.On("GetTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appnews.NewNewsApp(tt.fields.txRepo, tt.fields.newsRepo, tt.fields.fileStore)

			err := app.Delete(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
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
