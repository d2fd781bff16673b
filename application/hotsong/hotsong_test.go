package hotsong_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	apphotsong "github.com/kishoregurjar/lyrics-web-backend-sub000/application/hotsong"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/cmd/config"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	hotsongmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/hotsong"
	txmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/repository/tx"
	spotifymocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/spotify"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestHotSongApp_Add(t *testing.T) {
	cfg := &config.Config{
		LyricFind: config.LyricFindConfig{Territory: "US"},
	}

	providerTrack := &model.SpotifyTrack{
		ID:          "3n3Ppam7vgaVa1iaRUc9Lp",
		Name:        "Mr. Brightside",
		ISRC:        "GBFFP0300052",
		Artists:     []string{"The Killers"},
		Album:       "Hot Fuss",
		ReleaseDate: "2004-06-07",
		DurationMs:  222973,
		SpotifyURL:  "https://open.spotify.com/track/3n3Ppam7vgaVa1iaRUc9Lp",
		Images:      []string{"https://i.scdn.co/image/a"},
	}

	type fields struct {
		txRepo      *txmocks.TxRepository
		hotSongRepo *hotsongmocks.HotSongRepository
		spotify     *spotifymocks.Client
	}
	type args struct {
		ctx context.Context
		req *model.AddHotSongRequest
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
			name: "success: persisted document mirrors the provider track",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				hotSongRepo: hotsongmocks.NewHotSongRepository(t),
				spotify:     spotifymocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddHotSongRequest{ISRC: "GBFFP0300052", Genre: "rock"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("SearchByISRC", mock.Anything, "GBFFP0300052").
					Return(providerTrack, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.hotSongRepo.On("CountTx", mock.Anything, tx).Return(int64(3), nil).Once()
				f.hotSongRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.HotSongEntity) bool {
						return ent.ISRC == "GBFFP0300052" &&
							ent.Name == "Mr. Brightside" &&
							len(ent.Artists) == 1 && ent.Artists[0] == "The Killers" &&
							ent.SpotifyURL == providerTrack.SpotifyURL &&
							ent.Genre == "rock" &&
							ent.Territory == "US"
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown isrc is a negative result",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				hotSongRepo: hotsongmocks.NewHotSongRepository(t),
				spotify:     spotifymocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddHotSongRequest{ISRC: "XXXX00000000"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("SearchByISRC", mock.Anything, "XXXX00000000").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrTrackNotFound,
		},
		{
			name: "error: ninth live entry is rejected without a write",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				hotSongRepo: hotsongmocks.NewHotSongRepository(t),
				spotify:     spotifymocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddHotSongRequest{ISRC: "GBFFP0300052"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("SearchByISRC", mock.Anything, "GBFFP0300052").
					Return(providerTrack, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.hotSongRepo.On("CountTx", mock.Anything, tx).Return(int64(8), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrHotSongLimit,
		},
		{
			name: "error: provider failure surfaces raw",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				hotSongRepo: hotsongmocks.NewHotSongRepository(t),
				spotify:     spotifymocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AddHotSongRequest{ISRC: "GBFFP0300052"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("SearchByISRC", mock.Anything, "GBFFP0300052").
					Return(nil, errors.New("provider unavailable")).
					Once()
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
			app := apphotsong.NewHotSongApp(cfg, tt.fields.txRepo, tt.fields.hotSongRepo, tt.fields.spotify)

			got, err := app.Add(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID == "" {
				t.Fatal("Add() returned empty id")
			}
			if got.ISRC != "GBFFP0300052" {
				t.Fatalf("Add() isrc = %s, want GBFFP0300052", got.ISRC)
			}
		})
	}
}

func TestHotSongApp_Delete(t *testing.T) {
	cfg := &config.Config{}

	t.Run("error: unknown id", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		hotSongRepo := hotsongmocks.NewHotSongRepository(t)
		spotifyClient := spotifymocks.NewClient(t)

		tx := &sqlx.Tx{}
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		hotSongRepo.On("GetTx", mock.Anything, tx, "missing").Return(nil, nil).Once()
		txRepo.On("RollbackTx", tx).Return(nil).Once()

		app := apphotsong.NewHotSongApp(cfg, txRepo, hotSongRepo, spotifyClient)
		err := app.Delete(context.Background(), "missing")

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.Type() != constant.ErrNotFound {
			t.Fatalf("Delete() error = %v, want not found", err)
		}
	})
}
