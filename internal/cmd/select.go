package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runtimedeps/cli/internal/catalog"
	"github.com/runtimedeps/cli/internal/install"
	"github.com/runtimedeps/cli/internal/output"
)

// NewSelectCmd creates the select command.
func NewSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select components pending install",
		Long: `Select the catalog components that apply to the running system and are
not yet installed.

A component applies when its platform and architecture tags match the
target (the wildcard tag "neutral" matches everything). A component counts
as installed when the install.Lock marker exists in its resolved install
directory. Both checks together decide what the installer still has to
fetch.

Examples:
  # Components pending install for this machine
  rdep select

  # Same decision for a different target
  rdep select --platform win32 --arch x86_64

  # Machine-readable output for the download stage
  rdep select -o json`,
		RunE: runSelect,
	}

	return cmd
}

// runSelect executes the select command.
func runSelect(_ *cobra.Command, _ []string) error {
	format, valid := output.ParseFormat(outputFormatFlag)
	if !valid {
		return &ExitError{
			Code: ExitGeneralError,
			Err:  fmt.Errorf("invalid output format %q (valid: %v)", outputFormatFlag, output.ValidFormats()),
		}
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	target := GetTarget()
	selector := install.NewSelector(GetInstallRoot(), nil)

	var selected []catalog.Component
	spinErr := output.RunWithSpinner(context.Background(), func() error {
		selected = selector.Select(cat.Components, target)
		return nil
	}, output.WithTitle("Probing installed components..."))
	if spinErr != nil {
		return &ExitError{Code: ExitGeneralError, Err: spinErr}
	}

	if len(selected) == 0 {
		output.Println(output.FormatCheckmark(fmt.Sprintf(
			"nothing to install for %s",
			output.FormatTarget(target.Platform, target.Architecture),
		)))
		return nil
	}

	switch format {
	case output.FormatTable:
		rows := make([]output.ComponentRow, 0, len(selected))
		for _, c := range selected {
			rows = append(rows, output.ComponentRow{
				Description:  c.Description,
				Platform:     firstTag(c.Platforms),
				Architecture: firstTag(c.Architectures),
				InstallPath:  c.InstallPath,
				State:        output.StatePending,
			})
		}
		output.Println(output.RenderComponentTable(rows))
		output.Println(output.StyleSummary.Render(fmt.Sprintf(
			"%d component(s) pending install for %s/%s",
			len(selected), target.Platform, target.Architecture,
		)))
	default:
		infos := make([]output.ComponentInfo, len(selected))
		for i, c := range selected {
			infos[i] = c
		}
		if err := output.WriteComponents(infos, output.ComponentWriteOptions{
			Format: format,
			Writer: os.Stdout,
		}); err != nil {
			return &ExitError{Code: ExitGeneralError, Err: err}
		}
	}

	return nil
}

// loadCatalog loads the resolved catalog manifest, mapping a missing file
// to the not-found exit code.
func loadCatalog() (*catalog.Catalog, error) {
	path := GetCatalogPath()
	cat, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ExitError{
				Code: ExitNotFound,
				Err:  fmt.Errorf("catalog manifest %s: %w", path, ErrNotFound),
			}
		}
		return nil, &ExitError{Code: ExitGeneralError, Err: err}
	}
	return cat, nil
}

// firstTag returns the matching tag of a dimension, the only one the
// compatibility rule looks at.
func firstTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}
