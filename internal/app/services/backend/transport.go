package backend

import (
	"bytes"
	"careportal-service/internal/app/services/shared/metrics"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// Client is the HTTP transport shared by every backend resource client.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
	Metrics    *metrics.BackendMetrics
}

func NewClient(baseUrl string, timeout time.Duration, logger *zap.Logger, backendMetrics *metrics.BackendMetrics) *Client {
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
		Metrics:    backendMetrics,
	}
}

type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	AccessToken string
	Resource    string
	// UnauthorizedAsRejected reports a 401 as a rejected request rather than
	// an ended session. The token endpoint answers bad credentials with 401.
	UnauthorizedAsRejected bool
}

// Do sends request and returns the body of a 2xx answer. Failures come back
// as *exceptions.CustomError: transport problems as 502 with the generic
// unavailable message, a 401 as unauthorized, and any other non-2xx with the
// backend's own message when the body carries one.
func (c *Client) Do(ctx context.Context, request *Request) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	start := time.Now()

	if c.HTTPClient.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.HTTPClient.Timeout)
		defer cancel()
	}

	endpoint := c.BaseUrl + request.Path
	if len(request.Query) > 0 {
		endpoint += "?" + request.Query.Encode()
	}

	var body io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if request.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if request.AccessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+request.AccessToken)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.observe(request, "transport", start)
		c.Log.Error("backendClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, request.Resource)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.observe(request, "transport", start)
		return nil, exceptions.ErrReadHTTPResponse(err, request.Resource)
	}

	if resp.StatusCode == constvars.StatusUnauthorized && !request.UnauthorizedAsRejected {
		c.observe(request, "unauthorized", start)
		c.Log.Warn("backendClient.Do backend rejected bearer token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
		)
		return nil, exceptions.ErrBackendUnauthorized(fmt.Errorf("status %d", resp.StatusCode), request.Resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(request, "rejected", start)
		message := ExtractMessage(responseBody)
		c.Log.Warn("backendClient.Do backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, message),
		)
		rejection := &exceptions.BackendRejection{StatusCode: resp.StatusCode, Message: message}
		return nil, exceptions.ErrBackendRejected(rejection, request.Resource, portalStatus(resp.StatusCode))
	}

	c.observe(request, "ok", start)
	c.Log.Debug("backendClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, request.Resource),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(responseBody)),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return responseBody, nil
}

func (c *Client) observe(request *Request, outcome string, start time.Time) {
	c.Metrics.ObserveRequest(request.Resource, request.Method, outcome, time.Since(start).Seconds())
}

// portalStatus keeps 4xx answers as they are and reports backend failures as
// a bad gateway.
func portalStatus(statusCode int) int {
	if statusCode >= 500 || statusCode < 400 {
		return constvars.StatusBadGateway
	}
	return statusCode
}

// ExtractMessage pulls a human readable message out of an error body. It
// looks at message, error and detail in that order, then falls back to the
// flattened field errors of a validation response, e.g.
// {"username": ["This field is required."]}.
func ExtractMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		value := parsed.Get(key)
		if value.Type == gjson.String && strings.TrimSpace(value.Str) != "" {
			return strings.TrimSpace(value.Str)
		}
	}

	var parts []string
	parsed.ForEach(func(_, value gjson.Result) bool {
		parts = append(parts, flatten(value)...)
		return true
	})
	return strings.Join(parts, " ")
}

func flatten(value gjson.Result) []string {
	switch {
	case value.IsArray():
		var parts []string
		for _, item := range value.Array() {
			parts = append(parts, flatten(item)...)
		}
		return parts
	case value.IsObject():
		var parts []string
		value.ForEach(func(_, item gjson.Result) bool {
			parts = append(parts, flatten(item)...)
			return true
		})
		return parts
	case value.Type == gjson.String && strings.TrimSpace(value.Str) != "":
		return []string{strings.TrimSpace(value.Str)}
	}
	return nil
}
