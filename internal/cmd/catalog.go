package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runtimedeps/cli/internal/output"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with component catalog manifests",
	}

	cmd.AddCommand(newCatalogVetCmd())

	return cmd
}

func newCatalogVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate a catalog manifest",
		Long: `Validate the catalog manifest: every component must carry a description,
at least one platform tag, at least one architecture tag, and an install
path.

The selection pass silently skips malformed components; vet exists to
surface them before a catalog ships.`,
		RunE: runCatalogVet,
	}
}

// runCatalogVet executes the catalog vet command.
func runCatalogVet(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	errs := cat.Validate()
	if len(errs) == 0 {
		output.Println(output.FormatCheckmark(fmt.Sprintf(
			"catalog valid (%d components)", len(cat.Components),
		)))
		return nil
	}

	for _, e := range errs {
		output.Error("invalid component", "error", e)
	}

	return &ExitError{
		Code:    ExitValidationError,
		Err:     WrapValidation(errs[0], fmt.Sprintf("catalog has %d invalid component(s)", len(errs))),
		Printed: true,
	}
}
