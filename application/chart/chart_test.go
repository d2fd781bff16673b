package chart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appchart "github.com/kishoregurjar/lyrics-web-backend-sub000/application/chart"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	chartmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/chart"
	txmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/tx"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestChartApp_Ingest(t *testing.T) {
	t.Run("success: every entry is upserted in one transaction", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		chartRepo := chartmocks.NewChartRepository(t)

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		chartRepo.
			On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.TopChartEntity) bool {
				return ent.LFID == "lf-1" && ent.Title == "Song One"
			})).
			Return(nil).
			Once()
		chartRepo.
			On("UpsertTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.TopChartEntity) bool {
				return ent.LFID == "lf-2" && ent.Title == "Song Two"
			})).
			Return(nil).
			Once()
		txRepo.On("CommitTx", tx).Return(nil).Once()

		app := appchart.NewChartApp(txRepo, chartRepo)
		count, err := app.Ingest(context.Background(), &model.ChartIngestRequest{
			Entries: []model.ChartEntry{
				{LFID: "lf-1", Title: "Song One"},
				{LFID: "lf-2", Title: "Song Two"},
			},
		})
		if err != nil {
			t.Fatalf("Ingest() error = %v", err)
		}
		if count != 2 {
			t.Fatalf("Ingest() count = %d, want 2", count)
		}
	})

	t.Run("error: one failed upsert aborts the whole batch", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		chartRepo := chartmocks.NewChartRepository(t)

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		chartRepo.
			On("UpsertTx", mock.Anything, tx, mock.AnythingOfType("*model.TopChartEntity")).
			Return(errors.New("duplicate key")).
			Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := appchart.NewChartApp(txRepo, chartRepo)
		if _, err := app.Ingest(context.Background(), &model.ChartIngestRequest{
			Entries: []model.ChartEntry{{LFID: "lf-1", Title: "Song One"}},
		}); err == nil {
			t.Fatal("Ingest() expected error")
		}
	})
}

func TestChartApp_Delete(t *testing.T) {
	t.Run("error: unknown id", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		chartRepo := chartmocks.NewChartRepository(t)

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		chartRepo.On("GetTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := appchart.NewChartApp(txRepo, chartRepo)
		err := app.Delete(context.Background(), "missing")

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.Type() != constant.ErrNotFound {
			t.Fatalf("Delete() error = %v, want not found", err)
		}
	})
}
