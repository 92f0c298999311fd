package handlers

import (
	"net/http"
	"strings"
	"time"

	"horoscope-api/internal/dto"
	"horoscope-api/internal/horoscope"
	"horoscope-api/internal/models"
	"horoscope-api/internal/repository"
	"horoscope-api/internal/utils"
	"horoscope-api/internal/zodiac"
)

// HoroscopeHandler handles horoscope-related HTTP requests
type HoroscopeHandler struct {
	service *horoscope.Service
	users   repository.UserRepository
}

// NewHoroscopeHandler creates a new HoroscopeHandler instance
func NewHoroscopeHandler(service *horoscope.Service, users repository.UserRepository) *HoroscopeHandler {
	return &HoroscopeHandler{service: service, users: users}
}

// Today returns today's horoscope for the authenticated user's sign
// @Summary Get today's horoscope
// @Description Get or create today's horoscope for the caller's zodiac sign. Records a view.
// @Tags horoscope
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TodayResponse "Today's horoscope"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/horoscope/today [get]
func (h *HoroscopeHandler) Today(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if user == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
		return
	}

	sign, err := zodiac.ParseSign(user.ZodiacSign)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Invalid stored zodiac sign", err.Error())
		return
	}

	hs, err := h.service.GetOrCreate(r.Context(), sign, time.Now())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get horoscope", err.Error())
		return
	}

	if err := h.service.RecordView(r.Context(), userID, hs); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to record view", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TodayResponse{Horoscope: toHoroscopeResponse(hs)})
}

// History returns the trailing 7-day horoscope history for the caller's sign
// @Summary Get horoscope history
// @Description Get the stored horoscopes for the caller's sign over the trailing 7 days, flagged with viewed status.
// @Tags horoscope
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HistoryResponse "Trailing history window"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/horoscope/history [get]
func (h *HoroscopeHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if user == nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
		return
	}

	sign, err := zodiac.ParseSign(user.ZodiacSign)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Invalid stored zodiac sign", err.Error())
		return
	}

	entries, err := h.service.History(r.Context(), userID, sign, time.Now())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get history", err.Error())
		return
	}

	history := make([]dto.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, dto.HistoryEntry{
			Date:      utils.FormatDate(e.Date),
			Horoscope: toHoroscopeResponse(&e.Horoscope),
			Viewed:    e.Viewed,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HistoryResponse{History: history})
}

// BySign returns today's horoscope for the sign in the URL path
// @Summary Get today's horoscope for a sign
// @Description Get or create today's horoscope for any zodiac sign. No view is recorded.
// @Tags horoscope
// @Produce json
// @Param zodiacSign path string true "Zodiac sign" example(Aries)
// @Success 200 {object} dto.TodayResponse "Today's horoscope for the sign"
// @Failure 400 {object} dto.ErrorResponse "Invalid zodiac sign"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/horoscope/{zodiacSign} [get]
func (h *HoroscopeHandler) BySign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/horoscope/")
	sign, err := zodiac.ParseSign(raw)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid zodiac sign", "")
		return
	}

	hs, err := h.service.GetOrCreate(r.Context(), sign, time.Now())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get horoscope", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TodayResponse{Horoscope: toHoroscopeResponse(hs)})
}

// toHoroscopeResponse converts a horoscope model to its API representation.
func toHoroscopeResponse(h *models.Horoscope) dto.HoroscopeResponse {
	return dto.HoroscopeResponse{
		ID:         h.ID.String(),
		ZodiacSign: h.ZodiacSign,
		Date:       utils.FormatDate(h.Date),
		Content:    h.Content,
		Category:   h.Category,
		Mood:       h.Mood,
	}
}
