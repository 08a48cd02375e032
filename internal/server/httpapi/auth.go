package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dbellanger/lexico/internal/common"
	"github.com/dbellanger/lexico/internal/logging"
	"github.com/dbellanger/lexico/internal/server/users"
)

// AuthHandler handles registration, login and principal resolution.
type AuthHandler struct {
	users  *users.Service
	logger logging.Logger
}

func NewAuthHandler(users *users.Service, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger.With("module", "auth_handler")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type sessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Register creates a new account. The response never carries the password or
// its digest.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn(r.Context(), "registration rejected", "username", req.Username)
		writeError(w, err)
		return
	}

	h.logger.Info(r.Context(), "registered", "username", user.Username)
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// Login verifies the credentials and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	session, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info(r.Context(), "logged in", "username", session.User.Username)
	writeJSON(w, http.StatusOK, sessionResponse{
		ID:       session.User.ID,
		Username: session.User.Username,
		Token:    session.Token,
	})
}

// Me resolves the request's principal back to the stored credential record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrInvalidToken)
		return
	}

	user, err := h.users.GetByID(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
