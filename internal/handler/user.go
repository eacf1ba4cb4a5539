package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/userd/userd/internal/apperr"
	"github.com/userd/userd/internal/model"
	"github.com/userd/userd/internal/repository"
)

// UserStore is the persistence surface the user handlers depend on.
// *repository.Repository satisfies it.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	CreateUser(ctx context.Context, user model.NewUser) error
	UpdateUser(ctx context.Context, id int, user model.UpdateUser) error
	DeleteUser(ctx context.Context, id int) error
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	store    UserStore
	logger   *slog.Logger
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		store:    store,
		logger:   logger,
		validate: validator.New(),
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, apperr.Internal.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /user/{id}.
// Any lookup failure, including database errors, is reported as not found.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, apperr.UserNotFound.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user model.NewUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	if err := h.validate.Struct(user); err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		h.respondError(w, apperr.Internal.Wrap(err))
		return
	}

	h.logger.Info("user_created", "email", user.Email)

	// The response echoes the submitted payload; the assigned id is not read back.
	writeJSON(w, http.StatusCreated, user)
}

// Update handles PUT /user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	var user model.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	if err := h.validate.Struct(user); err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	if err := h.store.UpdateUser(r.Context(), id, user); err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("user_updated", "user_id", id)

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, apperr.BadRequest.Wrap(err))
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("user_deleted", "user_id", id)

	writeJSON(w, http.StatusOK, map[string]string{"msg": "User Deleted"})
}

// pathID extracts the integer identifier from the request path.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// respondError resolves err to its failure category and writes the
// uniform error envelope. Repository sentinels map to not found; anything
// uncategorized is an internal error.
func (h *UserHandler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrUserNotFound) {
		err = apperr.UserNotFound.Wrap(err)
	}

	e := apperr.From(err)
	if e.Status >= http.StatusInternalServerError {
		h.logger.Error("internal_error", "error", err)
	}

	writeJSON(w, e.Status, map[string]string{"error": e.Message})
}
