package music_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appmusic "github.com/kishoregurjar/lyrics-web-backend-sub000/application/music"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	lyricfindmocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/lyricfind"
	spotifymocks "github.com/kishoregurjar/lyrics-web-backend-sub000/mocks/thirdparty/spotify"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/model"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestMusicApp_GetLyrics(t *testing.T) {
	lyrics := &model.LyricsResult{
		Title:  "Mr. Brightside",
		Artist: "The Killers",
		Lyrics: "Coming out of my cage...",
	}

	type fields struct {
		spotify   *spotifymocks.Client
		lyricfind *lyricfindmocks.Client
	}
	type args struct {
		ctx context.Context
		req *model.LyricsRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LyricsResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: raw isrc goes straight to the lyrics provider",
			fields: fields{
				spotify:   spotifymocks.NewClient(t),
				lyricfind: lyricfindmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LyricsRequest{ID: "GBFFP0300052"},
			},
			mockCall: func(f fields) {
				f.lyricfind.On("Lyrics", mock.Anything, "GBFFP0300052").Return(lyrics, nil).Once()
			},
			want: lyrics,
		},
		{
			name: "success: 22-character track id is resolved to an isrc first",
			fields: fields{
				spotify:   spotifymocks.NewClient(t),
				lyricfind: lyricfindmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LyricsRequest{ID: "3n3Ppam7vgaVa1iaRUc9Lp"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("TrackByID", mock.Anything, "3n3Ppam7vgaVa1iaRUc9Lp").
					Return(&model.SpotifyTrack{ID: "3n3Ppam7vgaVa1iaRUc9Lp", ISRC: "GBFFP0300052"}, nil).
					Once()
				f.lyricfind.On("Lyrics", mock.Anything, "GBFFP0300052").Return(lyrics, nil).Once()
			},
			want: lyrics,
		},
		{
			name: "error: track id that resolves to nothing",
			fields: fields{
				spotify:   spotifymocks.NewClient(t),
				lyricfind: lyricfindmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LyricsRequest{ID: "0000000000000000000000"},
			},
			mockCall: func(f fields) {
				f.spotify.
					On("TrackByID", mock.Anything, "0000000000000000000000").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrTrackNotFound,
		},
		{
			name: "error: empty provider payload is a negative result",
			fields: fields{
				spotify:   spotifymocks.NewClient(t),
				lyricfind: lyricfindmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LyricsRequest{ID: "GBFFP0300052"},
			},
			mockCall: func(f fields) {
				f.lyricfind.On("Lyrics", mock.Anything, "GBFFP0300052").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNoLyrics,
		},
		{
			name: "error: provider failure surfaces raw",
			fields: fields{
				spotify:   spotifymocks.NewClient(t),
				lyricfind: lyricfindmocks.NewClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LyricsRequest{ID: "GBFFP0300052"},
			},
			mockCall: func(f fields) {
				f.lyricfind.
					On("Lyrics", mock.Anything, "GBFFP0300052").
					Return(nil, errors.New("lyrics provider unavailable")).
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
			app := appmusic.NewMusicApp(tt.fields.spotify, tt.fields.lyricfind, nil)

			got, err := app.GetLyrics(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetLyrics() error = %v, wantErr %v", err, tt.wantErr)
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

			if got != tt.want {
				t.Fatalf("GetLyrics() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMusicApp_Search(t *testing.T) {
	t.Run("success: passes query and limit through", func(t *testing.T) {
		spotifyClient := spotifymocks.NewClient(t)
		lyricfindClient := lyricfindmocks.NewClient(t)

		image := "https://i.scdn.co/image/a"
		want := []model.TrackResult{
			{Name: "Mr. Brightside", ID: "3n3Ppam7vgaVa1iaRUc9Lp", ISRC: "GBFFP0300052", Artist: "The Killers", Image: &image},
		}
		spotifyClient.On("SearchTracks", mock.Anything, "brightside", 10).Return(want, nil).Once()

		app := appmusic.NewMusicApp(spotifyClient, lyricfindClient, nil)
		got, err := app.Search(context.Background(), &model.SearchRequest{Query: "brightside", Limit: 10})
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(got) != 1 || got[0].ISRC != "GBFFP0300052" {
			t.Fatalf("Search() = %+v, want %+v", got, want)
		}
	})
}
