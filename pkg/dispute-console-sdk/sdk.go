package disputeconsolesdk

import "fmt"

// Client 是 SDK 对外入口，按资源分组（目前只有 Disputes）。
// 所有请求路径都挂在 merchant 根路径下：/merchants/{merchantID}/disputes。
type Client struct {
	http      *HTTPClient
	transport Transport

	emptyEvidence EmptyEvidencePolicy

	Disputes Disputes
}

func New(baseURL, merchantID string, opts ...Option) *Client {
	hc := NewHTTPClient(baseURL)

	c := &Client{
		http:          hc,
		transport:     hc,
		emptyEvidence: EmptyEvidenceAllow,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.Disputes = Disputes{
		http:          c.transport,
		root:          fmt.Sprintf("/merchants/%s/disputes", merchantID),
		emptyEvidence: c.emptyEvidence,
	}
	return c
}
