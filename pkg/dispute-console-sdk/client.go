package disputeconsolesdk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Transport 定义 SDK 与争议网关交互所需的最小 HTTP 能力，便于测试时注入 mock。
// 生产实现是 HTTPClient（基于 resty）。
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// HTTPClient 是最原生的 HTTP 交互层：负责 resty client、通用请求、错误解析。
type HTTPClient struct {
	http *resty.Client
}

type Option func(*Client)

// NewHTTPClient 创建底层 HTTP 客户端。baseURL 为网关地址（不含 merchant 路径）。
func NewHTTPClient(baseURL string) *HTTPClient {
	baseURL = strings.TrimRight(baseURL, "/")

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	// 每个请求带上 X-Request-Id，便于和网关侧日志对账。
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get("X-Request-Id") == "" {
			req.SetHeader("X-Request-Id", uuid.NewString())
		}
		return nil
	})

	return &HTTPClient{http: rc}
}

func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil && c.http != nil {
			c.http.http = rc
		}
	}
}

func WithBearerToken(token string) Option {
	return func(c *Client) {
		if token != "" && c.http != nil {
			c.http.http.SetAuthToken(token)
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && c.http != nil {
			c.http.http.SetHeader(key, value)
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 && c.http != nil {
			c.http.http.SetTimeout(d)
		}
	}
}

// WithTransport 完全替换底层 Transport（测试注入用）。
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithEmptyEvidencePolicy 配置 evidence 接口成功响应但缺少 evidence 字段时的处理策略。
func WithEmptyEvidencePolicy(p EmptyEvidencePolicy) Option {
	return func(c *Client) {
		c.emptyEvidence = p
	}
}

// APIError 表示网关返回的非 2xx 响应（HTTP status 可能是 400/404/422 等）。
// Body 仅在响应体解析出 apiErrorResponse 信封时非 nil，否则 Raw 保留原始内容便于排查。
type APIError struct {
	StatusCode int
	Body       *APIErrorBody
	Raw        string
}

func (e *APIError) Error() string {
	if e.Body != nil {
		return fmt.Sprintf("dispute-console api error: status=%d message=%q", e.StatusCode, e.Body.Message)
	}
	return fmt.Sprintf("dispute-console api error: status=%d body=%q", e.StatusCode, e.Raw)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	ge := new(errorEnvelope)
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(ge)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		ae := &APIError{StatusCode: resp.StatusCode(), Body: ge.APIErrorResponse}
		// 可能存在非信封格式的错误响应，这里尽量保留原始内容便于排查
		if ae.Body == nil && resp.Body() != nil {
			ae.Raw = string(resp.Body())
		}
		return ae
	}
	return nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodPut, path, nil, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, resty.MethodDelete, path, nil, out)
}
