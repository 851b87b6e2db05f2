package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runtimedeps/cli/internal/output"
	"github.com/runtimedeps/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

// runVersion executes the version command.
func runVersion() error {
	info := version.GetInfo()

	format, valid := output.ParseFormat(outputFormatFlag)
	if valid && format == output.FormatJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		output.Println(string(data))
		return nil
	}

	output.Println(fmt.Sprintf("rdep %s", info.Version))
	output.Println(fmt.Sprintf("  commit:   %s", info.Commit))
	output.Println(fmt.Sprintf("  built:    %s", info.Date))
	output.Println(fmt.Sprintf("  go:       %s", info.GoVersion))
	output.Println(fmt.Sprintf("  platform: %s", info.Platform))
	return nil
}
