package main

import (
	"fmt"
	"os"

	"github.com/asecurityteam/scaffold/pkg/deploy"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		descriptor string
		assignment string
	)
	cmd := &cobra.Command{
		Use:           "deploycheck",
		Short:         "Validate serverless.yml and the Dockerfile it builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checker := &deploy.Checker{BuildModeAssignment: assignment}
			problems, err := checker.CheckProject(descriptor)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p.String())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d deployment problem(s)", len(problems))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	cmd.Flags().StringVarP(&descriptor, "descriptor", "f", "serverless.yml", "path to the deployment descriptor")
	cmd.Flags().StringVar(&assignment, "build-mode-assignment", deploy.DefaultBuildModeAssignment, "linker assignment the image build must carry")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
