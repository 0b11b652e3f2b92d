package mkmodule

import (
	"fmt"
	"os"

	"github.com/rcops/mkmodule/internal/version"
	"github.com/rcops/mkmodule/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newGenConfigCmd(flags *rootFlags) *cobra.Command {
	var commented bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if commented {
				fmt.Fprint(cmd.OutOrStdout(), config.GenerateCommented())
				return nil
			}

			data, err := config.Generate(loadSettings(flags))
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			header := &doc.GenManHeader{
				Title:   "MKMODULE",
				Section: "1",
				Source:  "mkmodule " + version.Version,
				Manual:  "mkmodule manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", MsgDefaultManDir, MsgFlagManDir)
	return cmd
}
