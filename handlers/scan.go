// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/andrew-x/card-counter/middleware"
	"github.com/andrew-x/card-counter/models"
	"github.com/andrew-x/card-counter/recognizer"
)

type ScanHandler struct {
	rec recognizer.Recognizer
}

// NewScanHandler builds the scan endpoint. rec may be nil when no
// recognition service is configured; the endpoint then reports itself
// unavailable instead of failing requests halfway.
func NewScanHandler(rec recognizer.Recognizer) *ScanHandler {
	return &ScanHandler{rec: rec}
}

// Scan handles POST /scan
//
// The image goes to the external recognition service; the response is
// the recognized card labels plus the score they add up to under the
// supplied value mapping. Nothing is written to the store here - the UI
// records a round only after the user confirms the result.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	if h.rec == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Card recognition is not configured")
		return
	}

	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Image == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image is required")
		return
	}
	if req.ValueMap == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valueMap is required")
		return
	}

	result, err := h.rec.Scan(r.Context(), req.Image, req.ValueMap)
	if err != nil {
		slog.Error("card recognition failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Card recognition failed")
		return
	}

	slog.Info("cards recognized", "count", len(result.RecognizedCards), "total", result.TotalScore)
	middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
		RecognizedCards: result.RecognizedCards,
		TotalScore:      result.TotalScore,
	})
}
