package disputeconsolesdk

// APIErrorBody 是网关的 apiErrorResponse 信封内容：业务级失败描述，
// 与 HTTP status 解耦（2xx 响应也可能携带）。
type APIErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError 定位到具体字段的校验失败。
type FieldError struct {
	Attribute string `json:"attribute,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
}

// Result 是每个变更操作的统一结果：成功（evidence 接口会带 payload），
// 或网关返回的结构化业务错误。业务错误作为数据返回而非 error，
// 调用方可以直接分支处理，不需要错误断言。
type Result struct {
	// Evidence 仅 evidence 相关接口成功时可能非 nil。
	Evidence *Evidence

	// APIError 非 nil 表示网关侧业务失败。
	APIError *APIErrorBody
}

func (r *Result) IsSuccess() bool {
	return r != nil && r.APIError == nil
}

func successResult() *Result {
	return &Result{}
}

func evidenceResult(ev *Evidence) *Result {
	return &Result{Evidence: ev}
}

func failureResult(body *APIErrorBody) *Result {
	return &Result{APIError: body}
}

// EmptyEvidencePolicy 决定 evidence 接口返回非错误响应、却缺少 evidence 字段时的行为。
// 网关旧版本在异步落盘时会出现这种响应，语义上是"已受理但记录未回传"。
type EmptyEvidencePolicy int8

const (
	// EmptyEvidenceAllow 按成功处理，Result.Evidence 为 nil。默认值。
	EmptyEvidenceAllow EmptyEvidencePolicy = iota
	// EmptyEvidenceReject 视为异常响应，直接返回错误。
	EmptyEvidenceReject
)
