package config

import (
	"fmt"
	"time"

	"github.com/nft-rainbow/rainbow-goutils/utils/configutils"

	disputeconsolesdk "github.com/linchen228/paydispute-client/pkg/dispute-console-sdk"
)

// Config 描述 CLI 访问争议网关所需的全部参数。
type Config struct {
	// 网关地址，例如 https://console.gateway.example.com
	GatewayURL string `yaml:"gatewayUrl"`
	// 商户 id，所有请求路径都挂在该商户作用域下
	MerchantID string `yaml:"merchantId"`

	AuthToken string        `yaml:"authToken"`
	Timeout   time.Duration `yaml:"timeout"`

	// RejectEmptyEvidence 为 true 时，evidence 接口成功但缺少记录的响应按错误处理
	// （对应 SDK 的 EmptyEvidenceReject 策略）。默认为宽松模式。
	RejectEmptyEvidence bool `yaml:"rejectEmptyEvidence"`
}

// LoadFromFile 从 YAML 文件加载配置（解析失败直接 panic，与部署脚本的使用方式一致）。
func LoadFromFile(path string) *Config {
	return configutils.MustLoadByFile[Config](path)
}

func (c *Config) Validate() error {
	if c.GatewayURL == "" {
		return fmt.Errorf("配置缺少 gatewayUrl")
	}
	if c.MerchantID == "" {
		return fmt.Errorf("配置缺少 merchantId")
	}
	return nil
}

// NewClient 按配置构造 SDK 客户端。
func (c *Config) NewClient() *disputeconsolesdk.Client {
	var opts []disputeconsolesdk.Option
	if c.AuthToken != "" {
		opts = append(opts, disputeconsolesdk.WithBearerToken(c.AuthToken))
	}
	if c.Timeout > 0 {
		opts = append(opts, disputeconsolesdk.WithTimeout(c.Timeout))
	}
	if c.RejectEmptyEvidence {
		opts = append(opts, disputeconsolesdk.WithEmptyEvidencePolicy(disputeconsolesdk.EmptyEvidenceReject))
	}
	return disputeconsolesdk.New(c.GatewayURL, c.MerchantID, opts...)
}
