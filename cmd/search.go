package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	disputeconsolesdk "github.com/linchen228/paydispute-client/pkg/dispute-console-sdk"
)

var (
	searchStatuses     []string
	searchReasons      []string
	searchCaseContains string
	searchAmountMin    string
	searchAmountMax    string
	searchReceivedFrom string
	searchReceivedTo   string
	searchLimit        int
)

func init() {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "按条件分页检索争议，逐条输出 JSON",
		Long:  "search 命令把命令行条件翻译成网关的 advanced_search 请求。结果是惰性分页拉取的：只有向后翻页才会发起下一页请求，--limit 可以提前截断。",
		RunE:  runSearch,
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "./config.dispute.yaml", "配置文件路径（YAML）")
	cmd.Flags().StringSliceVar(&searchStatuses, "status", nil, "按状态过滤（可多次指定：open/disputed/accepted/expired/won/lost）")
	cmd.Flags().StringSliceVar(&searchReasons, "reason", nil, "按争议原因过滤（可多次指定）")
	cmd.Flags().StringVar(&searchCaseContains, "case-contains", "", "案件号包含指定子串")
	cmd.Flags().StringVar(&searchAmountMin, "amount-min", "", "金额下限（如 10.00）")
	cmd.Flags().StringVar(&searchAmountMax, "amount-max", "", "金额上限")
	cmd.Flags().StringVar(&searchReceivedFrom, "received-from", "", "收到日期起（YYYY-MM-DD）")
	cmd.Flags().StringVar(&searchReceivedTo, "received-to", "", "收到日期止")
	cmd.Flags().IntVar(&searchLimit, "limit", 0, "最多输出条数，0 表示不限制")

	rootCmd.AddCommand(cmd)
}

func buildSearchCriteria() *disputeconsolesdk.SearchCriteria {
	c := disputeconsolesdk.NewSearchCriteria()
	if len(searchStatuses) > 0 {
		c.Multiple("status").In(searchStatuses...)
	}
	if len(searchReasons) > 0 {
		c.Multiple("reason").In(searchReasons...)
	}
	if searchCaseContains != "" {
		c.Text("caseNumber").Contains(searchCaseContains)
	}
	if searchAmountMin != "" || searchAmountMax != "" {
		r := c.Range("amount")
		if searchAmountMin != "" {
			r.Min(searchAmountMin)
		}
		if searchAmountMax != "" {
			r.Max(searchAmountMax)
		}
	}
	if searchReceivedFrom != "" || searchReceivedTo != "" {
		r := c.Range("receivedDate")
		if searchReceivedFrom != "" {
			r.Min(searchReceivedFrom)
		}
		if searchReceivedTo != "" {
			r.Max(searchReceivedTo)
		}
	}
	return c
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	it := client.Disputes.Search(buildSearchCriteria()).Iterator()
	ctx := context.Background()

	var n int
	for it.Next(ctx) {
		if err := printJSON(it.Dispute()); err != nil {
			return err
		}
		n++
		if searchLimit > 0 && n >= searchLimit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return err
	}

	logrus.Infof("共命中 %d 条，输出 %d 条", it.TotalItems(), n)
	return nil
}
