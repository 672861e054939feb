package disputeconsolesdk

import (
	"time"

	"github.com/nft-rainbow/rainbow-goutils/utils/enumutils"
	"github.com/shopspring/decimal"
)

// 说明：
// - 金额字段统一使用 shopspring/decimal（JSON 是 "12.34" 这样的字符串），避免浮点误差。
// - JSON 字段名以网关真实输出为准（小驼峰 + 个别下划线历史字段），不要随意改动。

type DisputeStatus int8

const (
	DisputeStatusOpen DisputeStatus = iota + 1
	DisputeStatusDisputed
	DisputeStatusAccepted
	DisputeStatusExpired
	DisputeStatusWon
	DisputeStatusLost
)

var DisputeStatusEb enumutils.EnumBase[DisputeStatus]

func init() {
	DisputeStatusEb = enumutils.NewEnumBase("DisputeStatus", map[DisputeStatus]string{
		DisputeStatusOpen:     "open",
		DisputeStatusDisputed: "disputed",
		DisputeStatusAccepted: "accepted",
		DisputeStatusExpired:  "expired",
		DisputeStatusWon:      "won",
		DisputeStatusLost:     "lost",
	})
}

func (s DisputeStatus) MarshalText() ([]byte, error) {
	return DisputeStatusEb.MarshalText(s)
}

func (s *DisputeStatus) UnmarshalText(data []byte) error {
	val, err := DisputeStatusEb.UnmarshalText(data)
	if err != nil {
		return err
	}
	*s = val
	return nil
}

func (s DisputeStatus) String() string {
	return DisputeStatusEb.String(s)
}

func ParseDisputeStatus(s string) (DisputeStatus, error) {
	return DisputeStatusEb.Parse(s)
}

// DisputeReason 网关侧是开放集合，这里只列常见值，保留 string 底层方便透传未知值。
type DisputeReason string

const (
	DisputeReasonFraud                    DisputeReason = "fraud"
	DisputeReasonDuplicate                DisputeReason = "duplicate"
	DisputeReasonProductNotReceived       DisputeReason = "product_not_received"
	DisputeReasonProductUnsatisfactory    DisputeReason = "product_unsatisfactory"
	DisputeReasonTransactionAmountDiffers DisputeReason = "transaction_amount_differs"
	DisputeReasonGeneral                  DisputeReason = "general"
)

// TransactionSummary 是争议关联的原始交易的摘要信息。
type TransactionSummary struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// Evidence 是挂在争议下的子资源：文本补充（comment）或文件引用（url）。
type Evidence struct {
	ID                string     `json:"id"`
	Comment           string     `json:"comment,omitempty"`
	URL               string     `json:"url,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	SentToProcessorAt string     `json:"sentToProcessorAt,omitempty"`
}

// Dispute 是争议资源的完整表示。
type Dispute struct {
	ID                string        `json:"id"`
	Status            DisputeStatus `json:"status,omitempty"`
	Reason            DisputeReason `json:"reason,omitempty"`
	ReasonCode        string        `json:"reasonCode,omitempty"`
	Kind              string        `json:"kind,omitempty"`
	CaseNumber        string        `json:"caseNumber,omitempty"`
	MerchantAccountID string        `json:"merchantAccountId,omitempty"`

	Amount          decimal.Decimal `json:"amount"`
	CurrencyISOCode string          `json:"currencyIsoCode,omitempty"`

	ReceivedDate string `json:"receivedDate,omitempty"`
	ReplyByDate  string `json:"replyByDate,omitempty"`

	Transaction *TransactionSummary `json:"transaction,omitempty"`
	Evidence    []Evidence          `json:"evidence,omitempty"`
}

// 以下是各 endpoint 的响应模式：在传输层一次性解码成确定结构，
// 信封字段 apiErrorResponse 无论 HTTP status 如何，只要出现就表示业务失败。

type errorEnvelope struct {
	APIErrorResponse *APIErrorBody `json:"apiErrorResponse,omitempty"`
}

type disputeResponse struct {
	APIErrorResponse *APIErrorBody `json:"apiErrorResponse,omitempty"`
	Dispute          *Dispute      `json:"dispute,omitempty"`
}

type evidenceResponse struct {
	APIErrorResponse *APIErrorBody `json:"apiErrorResponse,omitempty"`
	Evidence         *Evidence     `json:"evidence,omitempty"`
}

type searchPageResponse struct {
	APIErrorResponse *APIErrorBody `json:"apiErrorResponse,omitempty"`

	TotalItems int       `json:"totalItems"`
	PageSize   int       `json:"pageSize"`
	Disputes   []Dispute `json:"disputes"`
}

// 请求体

type addTextEvidenceRequest struct {
	Comments string `json:"comments"`
}

type addFileEvidenceRequest struct {
	DocumentUploadID string `json:"document_upload_id"`
}

type searchRequest struct {
	Search map[string]any `json:"search"`
}
