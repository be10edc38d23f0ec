package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spender/internal/analytics"
	"spender/internal/dto"
	"spender/internal/models"
	"spender/internal/services"
	"spender/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type InsightsHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	echo                *echo.Echo
	mockInsightsService *service_mocks.MockInsightsServiceInterface
	handler             *InsightsHandler
	userID              uuid.UUID
}

func TestInsightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}

func (s *InsightsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockInsightsService = service_mocks.NewMockInsightsServiceInterface(s.ctrl)
	s.handler = NewInsightsHandler(s.mockInsightsService)
	s.userID = uuid.New()
}

func (s *InsightsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsHandlerTestSuite) newContext(path, param string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+param+path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/users/:userId" + path)
	c.SetParamNames("userId")
	c.SetParamValues(param)
	return c, rec
}

func (s *InsightsHandlerTestSuite) TestGetInsights_Success() {
	c, rec := s.newContext("/insights", s.userID.String())

	payload := &dto.InsightsResponse{
		Insight: analytics.Insight{
			Title:       "Steady week",
			Description: "Your spending is similar to last week.",
		},
		Patterns: []analytics.SpendingPattern{
			{ID: 1, Code: "worst_day", Text: "You spend 40% more on Mondays."},
		},
		Graphs: analytics.GraphsData{
			Pie: analytics.PieData{Good: 60, Unnecessary: 40},
			Bar: []analytics.BarItem{{Label: "Coffee", Value: 55}},
		},
		Achievements: dto.BuildAchievementsSection(models.DefaultAchievements(), []int{1}, []int{1}),
	}

	s.mockInsightsService.EXPECT().
		GetInsights(gomock.Any(), s.userID).
		Return(payload, nil)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	s.NotNil(data["insight"])
	s.NotNil(data["patterns"])
	s.NotNil(data["graphs"])
	s.NotNil(data["achievements"])
}

func (s *InsightsHandlerTestSuite) TestGetInsights_InvalidUserID() {
	c, rec := s.newContext("/insights", "not-a-uuid")

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "USER_001")
}

func (s *InsightsHandlerTestSuite) TestGetInsights_GenerationFailed() {
	c, rec := s.newContext("/insights", s.userID.String())

	s.mockInsightsService.EXPECT().
		GetInsights(gomock.Any(), s.userID).
		Return(nil, services.ErrInsightGeneration)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "INSIGHT_001")
}

func (s *InsightsHandlerTestSuite) TestGetInsights_UnlockPersistenceFailed() {
	c, rec := s.newContext("/insights", s.userID.String())

	s.mockInsightsService.EXPECT().
		GetInsights(gomock.Any(), s.userID).
		Return(nil, services.ErrAchievementUnlock)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "ACHIEVEMENT_001")
}

func (s *InsightsHandlerTestSuite) TestGetGraphs_Success() {
	c, rec := s.newContext("/insights/graphs", s.userID.String())

	payload := &dto.GraphsResponse{
		Graphs: analytics.GraphsData{
			Pie: analytics.PieData{Good: 75, Unnecessary: 25},
			Bar: []analytics.BarItem{{Label: "Rent", Value: 50}},
		},
	}

	s.mockInsightsService.EXPECT().
		GetGraphs(gomock.Any(), s.userID).
		Return(payload, nil)

	err := s.handler.GetGraphs(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"label":"Rent"`)
}

func (s *InsightsHandlerTestSuite) TestGetGraphs_InvalidUserID() {
	c, rec := s.newContext("/insights/graphs", "not-a-uuid")

	err := s.handler.GetGraphs(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "USER_001")
}

func (s *InsightsHandlerTestSuite) TestGetGraphs_ServiceError() {
	c, rec := s.newContext("/insights/graphs", s.userID.String())

	s.mockInsightsService.EXPECT().
		GetGraphs(gomock.Any(), s.userID).
		Return(nil, services.ErrInsightGeneration)

	err := s.handler.GetGraphs(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "INSIGHT_001")
}
