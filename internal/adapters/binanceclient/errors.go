package binanceclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adshao/go-binance/v2/common"

	"cryptoRSI/internal/ports"
)

// APIError is a failure reported by the exchange through a non-success response.
// Its message is exactly what the exchange said, or the HTTP status when it said nothing.
type APIError struct {
	StatusCode int    // HTTP status code, 0 when the SDK did not expose it
	StatusText string // HTTP reason phrase
	Code       int64  // Binance error code from the body, 0 when absent
	Message    string // Binance "msg" from the body
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("%d %s", e.StatusCode, e.StatusText)
	default:
		return fmt.Sprintf("exchange error code %d", e.Code)
	}
}

// Is reports whether target is ports.ErrAPIFailure.
func (e *APIError) Is(target error) bool {
	return target == ports.ErrAPIFailure
}

// newAPIError builds an APIError from a non-success HTTP response and its body.
func newAPIError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
	}
	var payload common.APIError
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}

// statusText returns the reason phrase sent by the server, falling back to the standard one.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// translateSDKError maps go-binance errors onto the adapter's error kinds.
// status is the HTTP status of the response that produced err, zero when none arrived.
func translateSDKError(err error, status responseStatus) error {
	var sdkErr *common.APIError
	if errors.As(err, &sdkErr) {
		return &APIError{
			StatusCode: status.code,
			StatusText: status.text,
			Code:       sdkErr.Code,
			Message:    sdkErr.Message,
		}
	}

	var urlErr *url.Error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.As(err, &urlErr):
		return fmt.Errorf("%w: %w", ports.ErrConnectionFailed, err)
	default:
		// Anything else comes from parsing the response body.
		return fmt.Errorf("%w: %w", ports.ErrDecodeFailed, err)
	}
}

// handleError logs a failed operation and returns the error to hand to the caller.
// Exchange-reported errors are returned untouched so their message reaches the user verbatim.
func handleError(ctx context.Context, logger ports.Logger, err error, operation string, fields map[string]interface{}) error {
	if err == nil {
		return nil
	}

	logFields := map[string]interface{}{"operation": operation}
	for k, v := range fields {
		logFields[k] = v
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		logFields["statusCode"] = apiErr.StatusCode
		logFields["apiErrorCode"] = apiErr.Code
		logger.Error(ctx, err, fmt.Sprintf("%s failed with API error", operation), logFields)
		return err
	}

	logger.Error(ctx, err, fmt.Sprintf("%s failed", operation), logFields)
	return fmt.Errorf("%s failed: %w", operation, err)
}
