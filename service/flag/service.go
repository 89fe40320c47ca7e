package flag

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elC0mpa/aws-tagger/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewService() *service {
	s := &service{}
	s.root = s.rootCommand()
	return s
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aws-tagger.yaml"
	}
	return filepath.Join(home, ".aws-tagger.yaml")
}

func (s *service) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aws-tagger",
		Short:         "Price EC2 inventory into tag reports and apply edited tags back",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&s.flags.ConfigPath, "config", "c", defaultConfigPath(), "Path to the settings file")
	root.PersistentFlags().String("profile", "", "AWS profile configuration")
	root.PersistentFlags().String("region", "us-east-1", "AWS region used for global calls")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "Log format (console or json)")

	root.AddCommand(s.reportCommand(), s.updateTagsCommand(), s.kubeReportCommand())
	return root
}

// capture records the selected command; the work itself runs after parsing.
func (s *service) capture(command model.Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		s.flags.Command = command
		s.flags.ConfigExplicit = cmd.Flags().Changed("config")
		s.selected = cmd.Flags()
		return nil
	}
}

func (s *service) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a priced instance report, optionally for one department",
		Args:  cobra.NoArgs,
		RunE:  s.capture(model.CommandReport),
	}
	cmd.Flags().StringVarP(&s.flags.Department, "department", "d", model.CommonSelector, "Tag value to report on, common for every instance")
	cmd.Flags().StringVar(&s.flags.TagKey, "tag-key", model.TagDepartment, "Tag key the department value is matched against")
	return cmd
}

func (s *service) updateTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-tags",
		Short: "Apply the organizational tags of an edited report",
		Args:  cobra.NoArgs,
		RunE:  s.capture(model.CommandUpdateTags),
	}
	cmd.Flags().StringVarP(&s.flags.Filename, "filename", "f", "", "Path to the edited report")
	cmd.Flags().BoolVar(&s.flags.DryRun, "dry-run", false, "Validate the file and log planned updates without tagging")
	cmd.Flags().BoolVar(&s.flags.Strict, "strict", false, "Fail when any row is rejected or fails to apply")
	_ = cmd.MarkFlagRequired("filename")
	return cmd
}

func (s *service) kubeReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kube-report",
		Short: "Write a per-service cost report from pod resource requests",
		Args:  cobra.NoArgs,
		RunE:  s.capture(model.CommandKubeReport),
	}
	cmd.Flags().StringVar(&s.flags.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	cmd.Flags().StringVar(&s.flags.KubeContext, "context", "", "Kubeconfig context to use")
	return cmd
}

// GetParsedFlags parses args. An empty Command means help was printed and
// there is nothing to run.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	s.root.SetArgs(args)
	if err := s.root.Execute(); err != nil {
		return model.Flags{}, fmt.Errorf("invalid arguments: %w", err)
	}
	return s.flags, nil
}

// FlagSet returns the parsed flags of the selected command, including
// inherited ones.
func (s *service) FlagSet() *pflag.FlagSet {
	return s.selected
}
