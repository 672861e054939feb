package disputeconsolesdk

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 供 errors.Is 使用：资源不存在（包括空白 id 的本地预检）。
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument 供 errors.Is 使用：非 id 参数不合法（如空白 evidence 文本）。
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingEvidencePayload：evidence 接口返回非错误响应但缺少 evidence 字段，
	// 且客户端配置了 EmptyEvidenceReject 策略。
	ErrMissingEvidencePayload = errors.New("gateway response missing evidence payload")
)

// NotFoundError 统一两类情况：本地预检发现 id 空白，以及网关返回 404。
// 消息在构造时就带上完整上下文（具体 id），调用方不需要再包装。
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func newDisputeNotFound(id string) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("dispute with id %q not found", id)}
}

func newDocumentNotFound(id string) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("document with id %q not found", id)}
}

// 组合查找（evidence 属于某个 dispute）失败时，消息必须同时点名两个 id。
func newEvidenceNotFound(evidenceID, disputeID string) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf("evidence with id %q for dispute with id %q not found", evidenceID, disputeID)}
}

// InvalidArgumentError 与 NotFoundError 严格区分：空白文本等输入问题不应被当作
// 资源缺失处理（也不应触发调用方的 not-found 分支重试）。
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string { return e.msg }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func newInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}
