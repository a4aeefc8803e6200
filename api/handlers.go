package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// GET /api/tweets — the acting user's feed.
func (h *Handler) feedHandler(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.svc.Feed(currentUser(r).ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tweetsResponse{Result: true, Tweets: tweets})
}

type postTweetRequest struct {
	TweetData     string  `json:"tweet_data"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

// POST /api/tweets
func (h *Handler) postTweetHandler(w http.ResponseWriter, r *http.Request) {
	var req postTweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest,
			errorResponse{Result: false, Error: "invalid request body"})
		return
	}

	id, err := h.svc.PostTweet(currentUser(r).ID, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, postTweetResponse{Result: true, ID: id})
}

// DELETE /api/tweets/{id}
func (h *Handler) deleteTweetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTweet(currentUser(r).ID, id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: true})
}

// POST /api/tweets/{id}/likes
func (h *Handler) likeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Like(currentUser(r).ID, id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: true})
}

// DELETE /api/tweets/{id}/likes
func (h *Handler) unlikeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unlike(currentUser(r).ID, id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: true})
}

// POST /api/users/{id}/follow
func (h *Handler) followHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Follow(currentUser(r).ID, id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: true})
}

// DELETE /api/users/{id}/follow
func (h *Handler) unfollowHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unfollow(currentUser(r).ID, id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resultResponse{Result: true})
}

// GET /api/users/me
func (h *Handler) meHandler(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, currentUser(r).ID)
}

// GET /api/users/{id}
func (h *Handler) userHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	h.writeProfile(w, id)
}

func (h *Handler) writeProfile(w http.ResponseWriter, userID int64) {
	profile, err := h.svc.Profile(userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, userResponse{Result: true, User: profile})
}

// POST /api/medias — multipart upload. The media row is written first so
// the file can be stored under its id-derived name.
func (h *Handler) mediaHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest,
			errorResponse{Result: false, Error: "missing upload file"})
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	id, err := h.svc.SaveMedia(ext)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if ext == "" {
		ext = model.DefaultExtension
	}
	name := fmt.Sprintf("%d%s", id, ext)
	if err := h.files.Save(name, file); err != nil {
		h.writeError(w, errors.Wrap(err, "store upload"))
		return
	}

	h.writeJSON(w, http.StatusOK, mediaResponse{Result: true, MediaID: id})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest,
			errorResponse{Result: false, Error: "invalid id"})
		return 0, false
	}
	return id, true
}
