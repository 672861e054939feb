package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	evidenceCmd := &cobra.Command{
		Use:   "evidence",
		Short: "管理争议下的证据（文本补充 / 已上传的文件）",
	}
	evidenceCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "./config.dispute.yaml", "配置文件路径（YAML）")

	addTextCmd := &cobra.Command{
		Use:   "add-text <dispute-id> <text>",
		Short: "为争议追加一条文本证据",
		Args:  cobra.ExactArgs(2),
		RunE:  runAddTextEvidence,
	}

	addFileCmd := &cobra.Command{
		Use:   "add-file <dispute-id> <document-upload-id>",
		Short: "把已上传的文件挂接为争议证据",
		Args:  cobra.ExactArgs(2),
		RunE:  runAddFileEvidence,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <dispute-id> <evidence-id>",
		Short: "删除争议下的一条证据",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemoveEvidence,
	}

	evidenceCmd.AddCommand(addTextCmd, addFileCmd, removeCmd)
	rootCmd.AddCommand(evidenceCmd)
}

func runAddTextEvidence(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Disputes.AddTextEvidence(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	return reportResult(res)
}

func runAddFileEvidence(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Disputes.AddFileEvidence(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	return reportResult(res)
}

func runRemoveEvidence(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Disputes.RemoveEvidence(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	if err := reportResult(res); err != nil {
		return err
	}

	logrus.Infof("证据 %s 已从争议 %s 移除", args[1], args[0])
	return nil
}
