package testimonial_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	apptestimonial "github.com/kishoregurjar/lyrics-web-backend-sub000/application/testimonial"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	testimonialmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/testimonial"
	txmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/tx"
	filestoremocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/filestore"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestTestimonialApp_Delete(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		testimonialRepo *testimonialmocks.TestimonialRepository
		fileStore       *filestoremocks.FileStore
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		hard     bool
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: soft delete keeps the avatar file",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				testimonialRepo: testimonialmocks.NewTestimonialRepository(t),
				fileStore:       filestoremocks.NewFileStore(t),
			},
			id:   "t-1",
			hard: false,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.testimonialRepo.
					On("GetTx", mock.Anything, tx, "t-1").
					Return(&model.TestimonialEntity{ID: "t-1", Avatar: "/uploads/testimonials/a.png"}, nil).
					Once()
				f.testimonialRepo.On("SoftDeleteTx", mock.Anything, tx, "t-1").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: hard delete removes the avatar file",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				testimonialRepo: testimonialmocks.NewTestimonialRepository(t),
				fileStore:       filestoremocks.NewFileStore(t),
			},
			id:   "t-1",
			hard: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.testimonialRepo.
					On("GetTx", mock.Anything, tx, "t-1").
					Return(&model.TestimonialEntity{ID: "t-1", Avatar: "/uploads/testimonials/a.png"}, nil).
					Once()
				f.testimonialRepo.On("HardDeleteTx", mock.Anything, tx, "t-1").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.fileStore.On("Remove", "/uploads/testimonials/a.png").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: hard delete tolerates a missing avatar file",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				testimonialRepo: testimonialmocks.NewTestimonialRepository(t),
				fileStore:       filestoremocks.NewFileStore(t),
			},
			id:   "t-1",
			hard: true,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.testimonialRepo.
					On("GetTx", mock.Anything, tx, "t-1").
					Return(&model.TestimonialEntity{ID: "t-1", Avatar: "/uploads/testimonials/gone.png"}, nil).
					Once()
				f.testimonialRepo.On("HardDeleteTx", mock.Anything, tx, "t-1").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.fileStore.On("Remove", "/uploads/testimonials/gone.png").Return(os.ErrNotExist).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown id",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				testimonialRepo: testimonialmocks.NewTestimonialRepository(t),
				fileStore:       filestoremocks.NewFileStore(t),
			},
			id:   "missing",
			hard: false,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.testimonialRepo.On("GetTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
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
			app := apptestimonial.NewTestimonialApp(tt.fields.txRepo, tt.fields.testimonialRepo, tt.fields.fileStore)

			err := app.Delete(context.Background(), tt.id, tt.hard)
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

func TestTestimonialApp_Update(t *testing.T) {
	t.Run("success: toggling is_active false sticks", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		testimonialRepo := testimonialmocks.NewTestimonialRepository(t)
		fileStore := filestoremocks.NewFileStore(t)

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		testimonialRepo.
			On("GetTx", mock.Anything, tx, "t-1").
			Return(&model.TestimonialEntity{ID: "t-1", FullName: "Jess", Rating: 5, IsActive: true}, nil).
			Once()
		testimonialRepo.
			On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.TestimonialEntity) bool {
				return !ent.IsActive && ent.FullName == "Jess" && ent.Rating == 5
			})).
			Return(nil).
			Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		app := apptestimonial.NewTestimonialApp(txRepo, testimonialRepo, fileStore)

		inactive := false
		got, err := app.Update(context.Background(), &model.UpdateTestimonialRequest{ID: "t-1", IsActive: &inactive})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.IsActive {
			t.Fatal("Update() did not clear is_active")
		}
	})
}
