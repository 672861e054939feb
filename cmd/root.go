package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/linchen228/paydispute-client/internal/config"
	disputeconsolesdk "github.com/linchen228/paydispute-client/pkg/dispute-console-sdk"
)

var rootCmd = &cobra.Command{
	Use:   "paydispute-client",
	Short: "支付争议（chargeback）管理的命令行客户端",
	Long:  "paydispute-client 是一款用 Go 编写的 CLI 工具，封装争议网关的 dispute 资源接口：查询、接受、提交证据、结束举证以及分页检索。",
}

var configPath string

// Execute 入口
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient 加载配置并构造 SDK 客户端，所有子命令共用。
func newClient() (*disputeconsolesdk.Client, error) {
	cfg := config.LoadFromFile(configPath)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "配置文件 %s 不完整", configPath)
	}
	return cfg.NewClient(), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// reportResult 把变更操作的 Result 统一转成命令行输出：业务失败走非零退出。
func reportResult(res *disputeconsolesdk.Result) error {
	if res.IsSuccess() {
		if res.Evidence != nil {
			return printJSON(res.Evidence)
		}
		return nil
	}

	for _, fe := range res.APIError.Errors {
		fmt.Fprintf(os.Stderr, "  [%s] %s: %s\n", fe.Code, fe.Attribute, fe.Message)
	}
	return errors.Errorf("网关拒绝操作: %s", res.APIError.Message)
}
