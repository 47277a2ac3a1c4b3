package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/arloliu/growthcast/errs"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Method  string `json:"method,omitempty"`
}

var validationSummaries = []struct {
	sentinel error
	summary  string
}{
	{errs.ErrUnknownMethod, "Unknown method"},
	{errs.ErrInsufficientData, "Insufficient data"},
	{errs.ErrNonConsecutiveYears, "Invalid year sequence"},
	{errs.ErrNonPositiveValue, "Invalid user counts"},
	{errs.ErrInvalidSteps, "Invalid steps"},
	{errs.ErrLengthMismatch, "Invalid input data"},
	{errs.ErrDuplicateX, "Invalid input data"},
	{errs.ErrNonFinite, "Invalid input data"},
	{errs.ErrMissingColumn, "Invalid CSV columns"},
	{errs.ErrMalformedRecord, "CSV processing failed"},
	{errs.ErrEmptyInput, "Missing input"},
}

// classify maps err to an HTTP status and response body.
func classify(err error, method string) (int, ErrorResponse) {
	var (
		ve    *errs.ValidationError
		fe    *errs.InterpolationFailure
		mbe   *http.MaxBytesError
		verrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &ve):
		summary := "Invalid request"
		for _, s := range validationSummaries {
			if errors.Is(ve.Err, s.sentinel) {
				summary = s.summary
				break
			}
		}

		return http.StatusBadRequest, ErrorResponse{Error: summary, Details: ve.Reason, Method: method}
	case errors.As(err, &fe):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "Interpolation failed", Details: fe.Cause.Error(), Method: method}
	case errors.As(err, &verrs) && len(verrs) > 0:
		field := verrs[0].Field()
		return http.StatusBadRequest, ErrorResponse{
			Error:   fmt.Sprintf("Missing '%s' in request", field),
			Details: fmt.Sprintf("field %s failed %q validation", field, verrs[0].Tag()),
			Method:  method,
		}
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large", Details: fmt.Sprintf("limit is %d bytes", mbe.Limit)}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out", Method: method}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal error", Details: err.Error(), Method: method}
	}
}

// badJSON reports a body that could not be decoded.
func badJSON(err error) (int, ErrorResponse) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return classify(err, "")
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return classify(err, "")
	}

	return http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON in request body", Details: err.Error()}
}

func (s *Server) fail(c *gin.Context, status int, body ErrorResponse) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("request_id", c.GetString(ctxKeyRequestID)),
			slog.String("error", body.Error),
			slog.String("details", body.Details))
	}
	c.AbortWithStatusJSON(status, body)
}

func (s *Server) writeError(c *gin.Context, err error, method string) {
	status, body := classify(err, method)
	s.fail(c, status, body)
}

func (s *Server) writeBindError(c *gin.Context, err error) {
	status, body := badJSON(err)
	s.fail(c, status, body)
}
