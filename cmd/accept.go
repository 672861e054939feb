package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "accept <dispute-id>",
		Short: "接受争议（放弃抗辩，按网关流程走赔付）",
		Args:  cobra.ExactArgs(1),
		RunE:  runAccept,
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "./config.dispute.yaml", "配置文件路径（YAML）")

	rootCmd.AddCommand(cmd)
}

func runAccept(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Disputes.Accept(context.Background(), args[0])
	if err != nil {
		return err
	}
	if err := reportResult(res); err != nil {
		return err
	}

	logrus.Infof("争议 %s 已接受", args[0])
	return nil
}
