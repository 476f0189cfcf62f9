package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"countryhub/pkg/apperrors"
	"countryhub/pkg/session"
	"countryhub/pkg/user"
)

type RegisterForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteKeyForm struct {
	UserID string `json:"userId"`
	APIKey string `json:"apiKey"`
	// Accepted for wire compatibility; the stored row decides.
	IsActive bool `json:"isActive"`
}

type AuthHandler struct {
	Users      user.ServiceInterface
	Sessions   session.ManagerInterface
	Logger     *slog.Logger
	CookieName string
}

func NewAuthHandler(users user.ServiceInterface, sessions session.ManagerInterface, logger *slog.Logger, cookieName string) *AuthHandler {
	return &AuthHandler{
		Users:      users,
		Sessions:   sessions,
		Logger:     logger,
		CookieName: cookieName,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Users.Register(req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			writeError(w, http.StatusBadRequest, typeError, err.Error())
			return
		}
		h.Logger.Error("register", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "registration failed")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"userId":  u.ID,
	}); ok {
		h.Logger.Info("register", "user", u.ID)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, apiKey, err := h.Sessions.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuth) {
			writeError(w, http.StatusUnauthorized, typeError, "Invalid credentials")
			return
		}
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "Login failed")
		return
	}

	h.setKeyCookie(w, apiKey)
	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user_id": u.ID,
	}); ok {
		h.Logger.Info("login", "user", u.ID)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.CookieName); err == nil {
		if err := h.Sessions.Logout(cookie.Value); err != nil {
			h.Logger.Error("logout", "error", err)
		}
	}

	h.clearKeyCookie(w)
	writeJSON(w, h.Logger, http.StatusOK, map[string]any{"message": "Logout successful"})
}

func (h *AuthHandler) GenerateNewKey(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[muxVarUserID]

	apiKey, err := h.Sessions.GenerateKey(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "User not found")
			return
		}
		h.Logger.Error("generate key", "error", err, "user", userID)
		writeError(w, http.StatusInternalServerError, typeError, "Error creating API Key")
		return
	}

	h.setKeyCookie(w, apiKey)
	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]any{
		"message": "New API Key created",
		"user_id": userID,
	}); ok {
		h.Logger.Info("new api key issued", "user", userID)
	}
}

func (h *AuthHandler) DeleteKey(w http.ResponseWriter, r *http.Request) {
	var req DeleteKeyForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if err := h.Sessions.DeleteKey(req.UserID, req.APIKey); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			writeError(w, http.StatusNotFound, typeMessage, err.Error())
		case errors.Is(err, apperrors.ErrConflict):
			writeError(w, http.StatusConflict, typeMessage, "Cannot delete API key while it is active.")
		default:
			h.Logger.Error("delete key", "error", err, "user", req.UserID)
			writeError(w, http.StatusInternalServerError, typeError, "Deletion failed")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]any{
		"message": "Api Key deleted successfully",
	}); ok {
		h.Logger.Info("api key deleted", "user", req.UserID)
	}
}

func (h *AuthHandler) ListKeys(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[muxVarUserID]

	keys, err := h.Sessions.ListKeys(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeError(w, http.StatusNotFound, typeMessage, "User not found")
			return
		}
		h.Logger.Error("list keys", "error", err, "user", userID)
		writeError(w, http.StatusInternalServerError, typeError, "Failed to fetch API keys")
		return
	}

	if keys == nil {
		keys = []session.Session{}
	}
	writeJSON(w, h.Logger, http.StatusOK, keys)
}

func (h *AuthHandler) setKeyCookie(w http.ResponseWriter, apiKey string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    apiKey,
		Path:     "/",
		HttpOnly: true,
	})
}

func (h *AuthHandler) clearKeyCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
