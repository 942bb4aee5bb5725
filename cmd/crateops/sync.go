// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/crateops/crateops/internal/reconcile"
	"github.com/crateops/crateops/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	syncForce   bool
	syncPrivate string
	syncName    string

	// syncCmd reconciles the current project against the template checkout.
	syncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Copy template config and doc files into the current project",
		Long: `Copy template config and doc files into the current project.

Copies the template's lint config, dependency policy, toolchain pin,
formatter config, CI workflow and DEVELOPMENT.md into the project, links
DEVELOPMENT.md from the README, appends the template's lint header to
src/lib.rs, and optionally generates a LICENSE file.

Existing files are left alone unless --force is given. The README and the
src/lib.rs header are idempotent text edits and never discard existing
content. The template location is read from the CRATEOPS_TEMPLATE_DIR
environment variable or the template_dir config key.`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}
)

func init() {
	syncCmd.Flags().BoolVarP(&syncForce, "force", "f", false, "overwrite existing files with template versions")
	syncCmd.Flags().StringVar(&syncPrivate, "private", "", "generate a proprietary LICENSE owned by this name")
	syncCmd.Flags().StringVar(&syncName, "name", "", "generate an MIT LICENSE owned by this name")
	// --private and --name select conflicting license templates; supplying
	// both is a usage error rather than a silent preference.
	syncCmd.MarkFlagsMutuallyExclusive("private", "name")
}

func runSync(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	owner, kind := resolveLicenseOwner(syncPrivate, syncName, loadedCfg.Owner)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	r := reconcile.New(reconcile.Options{
		Root:        cwd,
		TemplateDir: loadedCfg.TemplateDir,
		Force:       syncForce,
		Owner:       owner,
		License:     kind,
		Logger:      logger,
	})

	sum, err := r.Run()
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	fmt.Println(summaryLine(sum))
	return nil
}

// summaryLine renders the end-of-run summary, marking runs with failed
// steps in the error style.
func summaryLine(sum *reconcile.Summary) string {
	marker := SuccessStyle.Render("✓")
	if sum.Failed > 0 {
		marker = ErrorStyle.Render("✗")
	}
	return fmt.Sprintf("%s sync complete: %s", marker, sum)
}

// resolveLicenseOwner picks the license owner and template kind from the
// mutually exclusive flags, falling back to the configured owner with the
// permissive template. An empty owner means license generation is skipped.
func resolveLicenseOwner(private, name, fallback string) (string, reconcile.LicenseKind) {
	switch {
	case private != "":
		return private, reconcile.LicenseProprietary
	case name != "":
		return name, reconcile.LicenseMIT
	default:
		return fallback, reconcile.LicenseMIT
	}
}
