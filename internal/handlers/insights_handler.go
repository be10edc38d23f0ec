package handlers

import (
	"errors"
	"net/http"

	apierrors "spender/internal/errors"
	"spender/internal/services"

	"github.com/labstack/echo/v4"
)

type InsightsHandler struct {
	insightsService services.InsightsServiceInterface
}

func NewInsightsHandler(insightsService services.InsightsServiceInterface) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetInsights returns the composed insights payload for a user
//
// Method: GET /api/v1/users/:userId/insights
//
// Success Response: 200 OK
//   - insight: Insight of the week (title, description)
//   - patterns: Array of detected spending patterns
//   - graphs: Pie and bar chart data
//   - achievements: Newly unlocked ids, full unlocked set, and the
//     achievement table with unlock state
//
// Error Responses:
//   - 400: Invalid userId format
//   - 500: Insight generation failed
func (h *InsightsHandler) GetInsights(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails(err.Error()))
	}

	insights, err := h.insightsService.GetInsights(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: insights,
	})
}

// GetGraphs returns the chart payload alone
//
// Method: GET /api/v1/users/:userId/insights/graphs
//
// Success Response: 200 OK with pie and bar chart data
func (h *InsightsHandler) GetGraphs(c echo.Context) error {
	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return SendError(c, apierrors.UserInvalidID, apierrors.WithDetails(err.Error()))
	}

	graphs, err := h.insightsService.GetGraphs(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: graphs,
	})
}

func (h *InsightsHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidUserID):
		return SendError(c, apierrors.UserInvalidID)
	case errors.Is(err, services.ErrAchievementUnlock):
		return SendError(c, apierrors.AchievementUnlockFailed)
	case errors.Is(err, services.ErrInsightGeneration):
		return SendError(c, apierrors.InsightGenerationFailed)
	}
	return SendSystemError(c, err)
}
