package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrEmailExists
	ErrInvalidPassword
	ErrAccountDeactivated
	ErrHotSongLimit
	ErrNewsLimit
	ErrExpiredLink
	ErrInvalidToken
	ErrTrackNotFound
	ErrNoLyrics
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Something went wrong!",
	ErrNotFound:           "Not Found",
	ErrInvalidRequest:     "Invalid request",
	ErrUnauthorize:        "Unauthorized request",
	ErrForbidden:          "Access denied",
	ErrEmailExists:        "Email already exists",
	ErrInvalidPassword:    "Invalid password",
	ErrAccountDeactivated: "Account is deactivated",
	ErrHotSongLimit:       "Hot songs limit reached",
	ErrNewsLimit:          "News limit reached",
	ErrExpiredLink:        "Link is expired",
	ErrInvalidToken:       "Invalid token",
	ErrTrackNotFound:      "Track Not Found",
	ErrNoLyrics:           "No Lyrics Found",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrEmailExists:        http.StatusConflict,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrAccountDeactivated: http.StatusForbidden,
	ErrHotSongLimit:       http.StatusBadRequest,
	ErrNewsLimit:          http.StatusBadRequest,
	ErrExpiredLink:        http.StatusBadRequest,
	ErrInvalidToken:       http.StatusBadRequest,
	ErrTrackNotFound:      http.StatusNotFound,
	ErrNoLyrics:           http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrForbidden:          "0005",
	ErrEmailExists:        "0006",
	ErrInvalidPassword:    "0007",
	ErrAccountDeactivated: "0008",
	ErrHotSongLimit:       "0009",
	ErrNewsLimit:          "0010",
	ErrExpiredLink:        "0011",
	ErrInvalidToken:       "0012",
	ErrTrackNotFound:      "0013",
	ErrNoLyrics:           "0014",
}
