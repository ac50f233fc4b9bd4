package handlers

import (
	"net/http"

	"fuel-console/internal/settings"
	"fuel-console/pkg/apperror"
	"fuel-console/pkg/utils"
)

// SettingsHandler serves console-wide settings
type SettingsHandler struct {
	theme *settings.ThemeStore
}

func NewSettingsHandler(theme *settings.ThemeStore) *SettingsHandler {
	return &SettingsHandler{theme: theme}
}

type themeBody struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET /api/theme
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, themeBody{Theme: h.theme.Theme()})
}

// SetTheme handles PUT /api/theme
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, err)
		return
	}
	if err := h.theme.Set(r.Context(), body.Theme); err != nil {
		utils.Error(w, apperror.NewValidationError([]apperror.FieldError{{Field: "theme", Message: "Theme must be light or dark"}}))
		return
	}
	utils.JSON(w, http.StatusOK, themeBody{Theme: h.theme.Theme()})
}

// ToggleTheme handles POST /api/theme/toggle
func (h *SettingsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, themeBody{Theme: h.theme.Toggle(r.Context())})
}
