package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/quoinhq/quoin/internal/platform/db"
	"github.com/quoinhq/quoin/internal/platform/httpx"
	"github.com/quoinhq/quoin/internal/shared"
)

// ServiceResolver yields a Service bound to a fresh session for one request.
// The release function must run on every exit path.
type ServiceResolver interface {
	Resolve(ctx context.Context) (*Service, func(), error)
}

type providerResolver struct {
	provider *db.Provider
}

// NewResolver builds the production resolver: each request checks out a
// connection and wraps it in a repository and service.
func NewResolver(provider *db.Provider) ServiceResolver {
	return providerResolver{provider: provider}
}

func (pr providerResolver) Resolve(ctx context.Context) (*Service, func(), error) {
	conn, err := pr.provider.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return NewService(NewRepository(conn)), conn.Release, nil
}

// Handler wires the user CRUD endpoints. No state is shared between requests
// beyond the connection pool behind the resolver.
type Handler struct {
	logger   *slog.Logger
	resolver ServiceResolver
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, resolver ServiceResolver) *Handler {
	return &Handler{
		logger:   logger,
		resolver: resolver,
		validate: httpx.NewValidator(),
	}
}

// MountRoutes registers user routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.createUser)
	r.Get("/", h.listUsers)
	r.Get("/{userID}", h.getUser)
	r.Patch("/{userID}", h.updateUser)
	r.Delete("/{userID}", h.deleteUser)
}

func (h *Handler) service(w http.ResponseWriter, r *http.Request) (*Service, func(), bool) {
	svc, release, err := h.resolver.Resolve(r.Context())
	if err != nil {
		h.logger.Error("acquire session", slog.Any("error", err))
		httpx.RespondError(w, err)
		return nil, nil, false
	}
	return svc, release, true
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "userID")
	id, err := uuid.Parse(raw)
	if err != nil {
		httpx.RespondValidation(w, httpx.ValidationIssue{
			Loc:   []any{"path", "user_id"},
			Msg:   "value is not a valid UUID",
			Type:  "uuid_parsing",
			Input: raw,
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var in CreateUserRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		httpx.RespondError(w, err)
		return
	}

	svc, release, ok := h.service(w, r)
	if !ok {
		return
	}
	defer release()

	user, err := svc.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, "create user", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, NewUserResponse(user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params := shared.ParseListParams(r.URL.Query())

	svc, release, ok := h.service(w, r)
	if !ok {
		return
	}
	defer release()

	list, err := svc.List(r.Context(), params.Skip, params.Limit)
	if err != nil {
		h.respondError(w, "list users", err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewUserResponses(list))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	svc, release, ok := h.service(w, r)
	if !ok {
		return
	}
	defer release()

	user, err := svc.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewUserResponse(user))
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in UpdateUserRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(in); err != nil {
		httpx.RespondError(w, err)
		return
	}

	svc, release, ok := h.service(w, r)
	if !ok {
		return
	}
	defer release()

	user, err := svc.Update(r.Context(), id, in)
	if err != nil {
		h.respondError(w, "update user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, NewUserResponse(user))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	svc, release, ok := h.service(w, r)
	if !ok {
		return
	}
	defer release()

	if err := svc.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	var appErr *httpx.Error
	if !errors.As(err, &appErr) {
		h.logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
