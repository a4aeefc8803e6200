package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leosakharoff/tweetapi/model"
)

type resultResponse struct {
	Result bool `json:"result"`
}

type errorResponse struct {
	Result bool   `json:"result"`
	Error  string `json:"error"`
}

type postTweetResponse struct {
	Result bool  `json:"result"`
	ID     int64 `json:"id"`
}

type mediaResponse struct {
	Result  bool  `json:"result"`
	MediaID int64 `json:"media_id"`
}

type tweetsResponse struct {
	Result bool              `json:"result"`
	Tweets []model.FeedTweet `json:"tweets"`
}

type userResponse struct {
	Result bool           `json:"result"`
	User   *model.Profile `json:"user"`
}

// errStatus maps the closed error taxonomy to response codes. Anything
// outside the table is an internal fault.
var errStatus = map[error]int{
	model.ErrInvalidAPIKey:    http.StatusUnauthorized,
	model.ErrUserNotFound:     http.StatusNotFound,
	model.ErrTweetNotFound:    http.StatusNotFound,
	model.ErrNotTweetAuthor:   http.StatusForbidden,
	model.ErrAlreadyLiked:     http.StatusConflict,
	model.ErrAlreadyFollowing: http.StatusConflict,
	model.ErrNotLiked:         http.StatusBadRequest,
	model.ErrNotFollowing:     http.StatusBadRequest,
	model.ErrSelfFollow:       http.StatusBadRequest,
}

func statusFor(err error) int {
	for e, status := range errStatus {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Error("write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
		msg = "internal server error"
	}
	h.writeJSON(w, status, errorResponse{Result: false, Error: msg})
}
