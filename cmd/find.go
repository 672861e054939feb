package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "find <dispute-id>",
		Short: "按 id 拉取单个争议的完整信息",
		Args:  cobra.ExactArgs(1),
		RunE:  runFind,
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "./config.dispute.yaml", "配置文件路径（YAML）")

	rootCmd.AddCommand(cmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	dispute, err := client.Disputes.Find(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJSON(dispute)
}
