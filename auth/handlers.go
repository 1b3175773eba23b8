// HTTP handlers for the auth endpoints.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/growtwitter-go/apperror"
)

// Handlers wraps the auth Service with HTTP handlers.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the auth endpoints on the router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.HandleRegister())
	r.Post("/login", h.HandleLogin())
	r.Post("/refresh", h.HandleRefreshToken())
}

// HandleRegister godoc
// @Summary User registration
// @Description Registers a new user. Usernames are unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.Response "User created successfully"
// @Failure 400 {object} auth.Response "Invalid input"
// @Failure 409 {object} auth.Response "Username already taken"
// @Failure 500 {object} auth.Response "Internal server error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := ValidateStruct(req); err != nil {
			WriteError(w, r, err)
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteSuccess(w, http.StatusCreated, "user registered", user)
	}
}

// HandleLogin godoc
// @Summary User login
// @Description Authenticates a user and returns access and refresh tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.Response "Login successful"
// @Failure 400 {object} auth.Response "Invalid input"
// @Failure 401 {object} auth.Response "Invalid credentials"
// @Failure 500 {object} auth.Response "Internal server error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := ValidateStruct(req); err != nil {
			WriteError(w, r, err)
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteSuccess(w, http.StatusOK, "login successful", resp)
	}
}

// HandleRefreshToken godoc
// @Summary Refresh access token
// @Description Issues a new access token from a valid refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param refreshBody body auth.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} auth.Response "Tokens refreshed successfully"
// @Failure 400 {object} auth.Response "Invalid input"
// @Failure 401 {object} auth.Response "Invalid or expired refresh token"
// @Failure 500 {object} auth.Response "Internal server error"
// @Router /auth/refresh [post]
func (h *Handlers) HandleRefreshToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if err := ValidateStruct(req); err != nil {
			WriteError(w, r, err)
			return
		}

		resp, err := h.service.RefreshToken(r.Context(), req.RefreshToken)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteSuccess(w, http.StatusOK, "token refreshed", resp)
	}
}
