// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/andrew-x/card-counter/auth"
	"github.com/andrew-x/card-counter/cliparse"
	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/models"
)

type SessionHandler struct {
	cfg cliparse.Config
}

func NewSessionHandler(cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Login handles POST /login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := auth.CheckPassword(req.Password, h.cfg.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Password is incorrect")
		return
	}

	token, err := auth.CreateSessionToken(h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to create session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(auth.SessionTTL.Seconds()),
	})

	slog.Info("login succeeded", "remote", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged in"})
}

// Logout handles POST /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}
