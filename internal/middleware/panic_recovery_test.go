package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/jackmisner/BrewTracker-sub011/internal/errors"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_RecoversFromPanic tests that a panicking handler yields a 500 envelope
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoversFromPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/batch", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc-123")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("index corrupted")
	})

	err := handler(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("trace-abc-123", response.Error.TraceID)
}

// TestPanicRecovery_NoTraceID tests the fallback trace ID
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	err := handler(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("unknown", response.Error.TraceID)
}

// TestPanicRecovery_PassesThroughNormalRequests tests that non-panicking handlers are untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThroughNormalRequests() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

// TestPanicRecovery_PassesThroughHandlerErrors tests that returned errors are not swallowed
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThroughHandlerErrors() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	expected := echo.NewHTTPError(http.StatusBadRequest, "bad input")
	handler := PanicRecovery()(func(c echo.Context) error {
		return expected
	})

	err := handler(c)

	s.Equal(expected, err)
}
