package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "custom error maps to its status and message",
			err:         cerr.SetCustomError(constant.ErrEmailExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "Email already exists",
		},
		{
			name:        "negative lyrics lookup",
			err:         cerr.SetCustomError(constant.ErrNoLyrics),
			wantStatus:  http.StatusNotFound,
			wantMessage: "No Lyrics Found",
		},
		{
			name:        "unexpected error surfaces raw with 500",
			err:         errors.New("dial tcp: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Success {
				t.Fatal("success = true, want false")
			}
			if body.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", body.Message, tt.wantMessage)
			}
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, http.StatusCreated, true, "User registered successfully", map[string]string{"id": "u-1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var body Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !body.Success || body.Status != http.StatusCreated || body.Message != "User registered successfully" {
		t.Fatalf("body = %+v", body)
	}
	if body.Data == nil {
		t.Fatal("data = nil, want payload")
	}
}
