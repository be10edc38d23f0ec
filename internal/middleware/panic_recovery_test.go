package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spender/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) newInsightsContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+uuid.New().String()+"/insights", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// TestPanicRecovery_ErrorEnvelope tests that a panicking handler produces the
// standard internal error envelope, whatever the panic value is
func (s *PanicRecoveryTestSuite) TestPanicRecovery_ErrorEnvelope() {
	panicValues := []interface{}{
		"expense index out of range",
		42,
		struct{ reason string }{"broken aggregation"},
	}

	for _, value := range panicValues {
		c, rec := s.newInsightsContext()
		c.Set(TraceIDContextKey, "trace-insights-1")

		handler := PanicRecovery()(func(c echo.Context) error {
			panic(value)
		})

		s.NotPanics(func() {
			_ = handler(c)
		})

		s.Equal(http.StatusInternalServerError, rec.Code)

		var errorResponse errors.ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
		s.Equal("SYSTEM_001", errorResponse.Error.Code)
		s.Equal("trace-insights-1", errorResponse.Error.TraceID)
	}
}

// TestPanicRecovery_UnknownTraceID tests the trace ID fallback when the trace
// middleware never ran
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	c, rec := s.newInsightsContext()

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("no trace middleware")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

// TestPanicRecovery_PassThrough tests that well-behaved handlers are untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassThrough() {
	c, rec := s.newInsightsContext()

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
