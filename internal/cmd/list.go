package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runtimedeps/cli/internal/install"
	"github.com/runtimedeps/cli/internal/output"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog components and their install state",
		Long: `List catalog components with their disposition for the current target:

  pending       compatible, no install marker on disk
  installed     compatible, install marker present
  incompatible  platform or architecture tags do not match the target

Incompatible components are hidden unless --all is given.

Examples:
  # Compatible components and their state
  rdep list

  # The whole catalog, incompatible entries included
  rdep list --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(allFlag)
		},
	}

	cmd.Flags().BoolVarP(&allFlag, "all", "a", false, "Include incompatible components")

	return cmd
}

// runList executes the list command.
func runList(all bool) error {
	format, valid := output.ParseFormat(outputFormatFlag)
	if !valid || format != output.FormatTable {
		return &ExitError{
			Code: ExitGeneralError,
			Err:  fmt.Errorf("invalid output format %q for list (valid: table)", outputFormatFlag),
		}
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	target := GetTarget()
	selector := install.NewSelector(GetInstallRoot(), nil)

	var statuses []install.Status
	spinErr := output.RunWithSpinner(context.Background(), func() error {
		statuses = selector.Inspect(cat.Components, target)
		return nil
	}, output.WithTitle("Probing installed components..."))
	if spinErr != nil {
		return &ExitError{Code: ExitGeneralError, Err: spinErr}
	}

	var rows []output.ComponentRow
	var pending, installed int
	for _, st := range statuses {
		state := output.StateIncompatible
		switch {
		case st.Compatible && st.Installed:
			state = output.StateInstalled
			installed++
		case st.Compatible:
			state = output.StatePending
			pending++
		}

		if !st.Compatible && !all {
			continue
		}

		rows = append(rows, output.ComponentRow{
			Description:  st.Component.Description,
			Platform:     firstTag(st.Component.Platforms),
			Architecture: firstTag(st.Component.Architectures),
			InstallPath:  st.Component.InstallPath,
			State:        state,
		})
	}

	if len(rows) == 0 {
		output.Println(fmt.Sprintf("No components in catalog apply to %s/%s.",
			target.Platform, target.Architecture))
		return nil
	}

	output.Println(output.RenderComponentTable(rows))
	output.Println(output.StyleSummary.Render(fmt.Sprintf(
		"Target %s/%s: %d installed, %d pending, %d total",
		target.Platform, target.Architecture, installed, pending, len(statuses),
	)))

	return nil
}
