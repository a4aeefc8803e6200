// Package api exposes the application over HTTP: gorilla/mux routing,
// api-key authentication and the JSON envelopes of the public contract.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/leosakharoff/tweetapi/model"
	"github.com/leosakharoff/tweetapi/service"
	"github.com/leosakharoff/tweetapi/storage"
)

// Handler serves the JSON API.
type Handler struct {
	svc   *service.Service
	users model.UserService
	files storage.FileStore
	log   *logrus.Logger
}

// NewHandler wires the API over the application service, the user table
// service used for api-key resolution, and the media file store.
func NewHandler(svc *service.Service, users model.UserService,
	files storage.FileStore, log *logrus.Logger) *Handler {

	return &Handler{svc: svc, users: users, files: files, log: log}
}

// Router builds the route table. storageDir, when non-empty, is served
// under /storage/ for media access URLs.
func (h *Handler) Router(storageDir string) *mux.Router {
	r := mux.NewRouter()

	if storageDir != "" {
		fs := http.FileServer(http.Dir(storageDir))
		r.PathPrefix("/storage/").Handler(http.StripPrefix("/storage/", fs))
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.auth)

	api.HandleFunc("/tweets", h.feedHandler).Methods(http.MethodGet)
	api.HandleFunc("/tweets", h.postTweetHandler).Methods(http.MethodPost)
	api.HandleFunc("/tweets/{id}", h.deleteTweetHandler).Methods(http.MethodDelete)
	api.HandleFunc("/tweets/{id}/likes", h.likeHandler).Methods(http.MethodPost)
	api.HandleFunc("/tweets/{id}/likes", h.unlikeHandler).Methods(http.MethodDelete)
	api.HandleFunc("/users/me", h.meHandler).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.userHandler).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/follow", h.followHandler).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/follow", h.unfollowHandler).Methods(http.MethodDelete)
	api.HandleFunc("/medias", h.mediaHandler).Methods(http.MethodPost)

	return r
}

type userContextKey struct{}

// auth resolves the api-key header to a user and stores it on the request
// context. Everything under /api requires a valid key.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("api-key")
		if key == "" {
			h.writeError(w, model.ErrInvalidAPIKey)
			return
		}

		user, err := h.users.ByAPIKey(key)
		if err != nil {
			h.writeError(w, err)
			return
		}

		h.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"user":   user.ID,
		}).Debug("request")

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(r *http.Request) *model.User {
	user, _ := r.Context().Value(userContextKey{}).(*model.User)
	return user
}
