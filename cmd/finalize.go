package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "finalize <dispute-id>",
		Short: "结束举证，把争议提交给处理方裁决（此后不能再追加证据）",
		Args:  cobra.ExactArgs(1),
		RunE:  runFinalize,
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "./config.dispute.yaml", "配置文件路径（YAML）")

	rootCmd.AddCommand(cmd)
}

func runFinalize(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Disputes.Finalize(context.Background(), args[0])
	if err != nil {
		return err
	}
	if err := reportResult(res); err != nil {
		return err
	}

	logrus.Infof("争议 %s 已提交裁决", args[0])
	return nil
}
