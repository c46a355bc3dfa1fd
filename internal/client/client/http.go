package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/faceforward/internal/client/intake"
	"github.com/dmitrijs2005/faceforward/internal/client/models"
	"github.com/dmitrijs2005/faceforward/internal/common"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

// Backend routes, relative to the API base URL.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	UploadPath   = "/upload"

	// UploadField is the multipart field carrying the image.
	UploadField = "image"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithBaseTransport replaces the round tripper underneath the token
// interceptor. The default is http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.http.Transport.(*bearerTransport).base = rt
	}
}

// NewHTTPClient returns a client for the API rooted at baseURL. The token is
// read from tokens before every request.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens, log: log},
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) Result {
	return c.postJSON(ctx, LoginPath, models.LoginRequest{Email: email, Password: password}, LoginFailedMessage)
}

// Register creates an account. The backend expects the display name under
// "username".
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) Result {
	req := models.RegisterRequest{Username: name, Email: email, Password: password}
	return c.postJSON(ctx, RegisterPath, req, RegistrationFailedMessage)
}

// Upload sends img as a multipart form with a single "image" part.
func (c *HTTPClient) Upload(ctx context.Context, img *intake.Image) Result {
	if img == nil {
		return failed("", AnalysisFailedMessage)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, UploadField, quoteEscaper.Replace(img.Name)))
	h.Set(common.ContentTypeHeaderName, intake.ContentTypeJPEG)

	part, err := w.CreatePart(h)
	if err != nil {
		return failed(err.Error(), AnalysisFailedMessage)
	}
	if _, err := part.Write(img.Data); err != nil {
		return failed(err.Error(), AnalysisFailedMessage)
	}
	if err := w.Close(); err != nil {
		return failed(err.Error(), AnalysisFailedMessage)
	}

	return c.do(ctx, UploadPath, &body, w.FormDataContentType(), AnalysisFailedMessage)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any, fallback string) Result {
	data, err := json.Marshal(payload)
	if err != nil {
		return failed(err.Error(), fallback)
	}
	return c.do(ctx, path, bytes.NewReader(data), jsonContentType, fallback)
}

func (c *HTTPClient) do(ctx context.Context, path string, body io.Reader, contentType, fallback string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return failed(err.Error(), fallback)
	}
	req.Header.Set(common.ContentTypeHeaderName, contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return failed(transportMessage(err), fallback)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(err.Error(), fallback)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return succeeded(data)
	}

	c.log.Info(ctx, "api call rejected", "path", path, "status", resp.StatusCode)

	if msg := serverMessage(data); msg != "" {
		return failed(msg, fallback)
	}
	return failed(fmt.Sprintf("Request failed with status code %d", resp.StatusCode), fallback)
}

// transportMessage strips the "Post <url>:" decoration net/http adds.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		err = uerr.Err
	}
	return err.Error()
}

func serverMessage(body []byte) string {
	var e models.ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}
