package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/faceforward/internal/common"
	"github.com/dmitrijs2005/faceforward/internal/logging"
	"github.com/google/uuid"
)

const jsonContentType = "application/json"

// bearerTransport is the request interceptor shared by all API calls.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	log    logging.Logger
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token := ""
	if t.tokens != nil {
		var err error
		token, err = t.tokens.Token(ctx)
		if err != nil {
			if req.Body != nil {
				req.Body.Close()
			}
			return nil, fmt.Errorf("read session token: %w", err)
		}
	}

	req = req.Clone(ctx)
	if req.Header.Get(common.ContentTypeHeaderName) == "" {
		req.Header.Set(common.ContentTypeHeaderName, jsonContentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	id := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, id)

	t.log.Debug(ctx, "api request", "method", req.Method, "path", req.URL.Path, "request_id", id, "authorized", token != "")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Warn(ctx, "api request failed", "request_id", id, "error", err)
		return nil, err
	}

	t.log.Debug(ctx, "api response", "request_id", id, "status", resp.StatusCode)
	return resp, nil
}
