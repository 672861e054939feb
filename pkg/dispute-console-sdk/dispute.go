package disputeconsolesdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Disputes 聚合争议资源下的所有接口。所有 id 参数在发请求前先做空白预检：
// 空白 id 不会触达传输层，直接以带完整上下文的 NotFoundError 失败。
type Disputes struct {
	http Transport
	root string

	emptyEvidence EmptyEvidencePolicy
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (d Disputes) path(format string, ids ...string) string {
	escaped := make([]any, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	return d.root + fmt.Sprintf(format, escaped...)
}

// normalizeCallError 把传输层错误归一化：
// - 404 统一映射成调用点给定的 NotFoundError（与空白 id 预检同一错误类型）；
// - 带信封的业务错误作为 Result 数据返回，调用方无需区分它来自哪个 HTTP status；
// - 其余传输错误原样上抛，不重试、不包装。
func normalizeCallError(err error, notFound *NotFoundError) (*Result, error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return nil, notFound
		}
		if apiErr.Body != nil {
			return failureResult(apiErr.Body), nil
		}
	}
	return nil, err
}

// Accept 接受争议（放弃抗辩）。成功时 Result 不带 payload。
func (d Disputes) Accept(ctx context.Context, id string) (*Result, error) {
	return d.transition(ctx, id, "accept")
}

// Finalize 结束证据提交，把争议转入处理方裁决阶段。
func (d Disputes) Finalize(ctx context.Context, id string) (*Result, error) {
	return d.transition(ctx, id, "finalize")
}

func (d Disputes) transition(ctx context.Context, id, action string) (*Result, error) {
	if isBlank(id) {
		return nil, newDisputeNotFound(id)
	}
	id = strings.TrimSpace(id)

	var out errorEnvelope
	if err := d.http.Put(ctx, d.path("/%s/"+action, id), &out); err != nil {
		return normalizeCallError(err, newDisputeNotFound(id))
	}
	if out.APIErrorResponse != nil {
		return failureResult(out.APIErrorResponse), nil
	}
	return successResult(), nil
}

// AddTextEvidence 为争议追加文本证据。content 空白属于参数错误（InvalidArgument），
// 与 id 空白（NotFound）是两类问题，调用方不应混同处理。
func (d Disputes) AddTextEvidence(ctx context.Context, id, content string) (*Result, error) {
	if isBlank(id) {
		return nil, newDisputeNotFound(id)
	}
	if isBlank(content) {
		return nil, newInvalidArgument("evidence comments must not be blank")
	}
	id = strings.TrimSpace(id)

	var out evidenceResponse
	err := d.http.Post(ctx, d.path("/%s/evidence", id), addTextEvidenceRequest{Comments: content}, &out)
	if err != nil {
		return normalizeCallError(err, newDisputeNotFound(id))
	}
	return d.evidenceOutcome(&out, "add text evidence")
}

// AddFileEvidence 为争议挂接已上传的文件证据。两个 id 都要先过空白预检。
func (d Disputes) AddFileEvidence(ctx context.Context, id, documentUploadID string) (*Result, error) {
	if isBlank(id) {
		return nil, newDisputeNotFound(id)
	}
	if isBlank(documentUploadID) {
		return nil, newDocumentNotFound(documentUploadID)
	}
	id = strings.TrimSpace(id)
	documentUploadID = strings.TrimSpace(documentUploadID)

	var out evidenceResponse
	err := d.http.Post(ctx, d.path("/%s/evidence", id), addFileEvidenceRequest{DocumentUploadID: documentUploadID}, &out)
	if err != nil {
		return normalizeCallError(err, newDisputeNotFound(id))
	}
	return d.evidenceOutcome(&out, "add file evidence")
}

// RemoveEvidence 删除争议下的某条证据。任一 id 空白时，错误消息必须同时点名
// evidence id 与 dispute id 的从属关系，而不是笼统的空白提示。
func (d Disputes) RemoveEvidence(ctx context.Context, id, evidenceID string) (*Result, error) {
	if isBlank(id) || isBlank(evidenceID) {
		return nil, newEvidenceNotFound(evidenceID, id)
	}
	id = strings.TrimSpace(id)
	evidenceID = strings.TrimSpace(evidenceID)

	var out errorEnvelope
	if err := d.http.Delete(ctx, d.path("/%s/evidence/%s", id, evidenceID), &out); err != nil {
		return normalizeCallError(err, newEvidenceNotFound(evidenceID, id))
	}
	if out.APIErrorResponse != nil {
		return failureResult(out.APIErrorResponse), nil
	}
	return successResult(), nil
}

func (d Disputes) evidenceOutcome(out *evidenceResponse, op string) (*Result, error) {
	if out.APIErrorResponse != nil {
		return failureResult(out.APIErrorResponse), nil
	}
	if out.Evidence == nil && d.emptyEvidence == EmptyEvidenceReject {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingEvidencePayload)
	}
	return evidenceResult(out.Evidence), nil
}

// Find 拉取单个争议。空白 id 与网关 404 都表现为同一种 NotFoundError。
func (d Disputes) Find(ctx context.Context, id string) (*Dispute, error) {
	if isBlank(id) {
		return nil, newDisputeNotFound(id)
	}
	id = strings.TrimSpace(id)

	var out disputeResponse
	if err := d.http.Get(ctx, d.path("/%s", id), &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, newDisputeNotFound(id)
		}
		return nil, err
	}
	if out.APIErrorResponse != nil {
		return nil, &APIError{StatusCode: http.StatusOK, Body: out.APIErrorResponse}
	}
	if out.Dispute == nil {
		return nil, newDisputeNotFound(id)
	}
	return out.Dispute, nil
}

// Search 构造一个绑定检索条件的惰性分页查询，本身不发任何请求；
// 页数据随迭代推进按需拉取，详见 SearchQuery。
func (d Disputes) Search(criteria *SearchCriteria) *SearchQuery {
	return &SearchQuery{
		http:     d.http,
		root:     d.root,
		criteria: criteria,
	}
}
