// SPDX-License-Identifier: MPL-2.0

// Package reconcile copies a fixed set of config and documentation files
// from a template checkout into a target project, applies a small number of
// idempotent text edits, and optionally generates a LICENSE file.
//
// Every destructive write is gated by the force flag: without it, an
// existing destination file is never touched. The steps are independent; a
// failing step is logged and counted, and later steps still run.
package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crateops/crateops/internal/issue"
	"github.com/crateops/crateops/internal/project"

	"github.com/charmbracelet/log"
)

const (
	// WorkflowFile is the CI workflow destination, relative to the project root.
	WorkflowFile = ".github/workflows/ci.yml"
	// DevelopmentDoc is the documentation file copied from the template.
	DevelopmentDoc = "DEVELOPMENT.md"
	// ReadmeFile is the target project's README.
	ReadmeFile = "README.md"
	// ReadmePointerLine is prepended to (or seeds) the README exactly once.
	ReadmePointerLine = "See [DEVELOPMENT.md](DEVELOPMENT.md) for the development workflow."
	// HeaderTemplateFile is the template file holding the source header block.
	HeaderTemplateFile = "header.rs"
	// HeaderTargetFile is the project source file the header block is appended to.
	HeaderTargetFile = "src/lib.rs"
	// LicenseFile is the generated license destination.
	LicenseFile = "LICENSE"
)

// ConfigFiles are the fixed config files copied verbatim from the template
// root into the project root.
var ConfigFiles = []string{
	"clippy.toml",
	"deny.toml",
	"rust-toolchain.toml",
	"rustfmt.toml",
}

// Options configures a reconciliation run. It is built once by the caller
// from flags, config and environment; the reconciler itself never consults
// the ambient environment.
type Options struct {
	// Root is the target project root. Must contain the project manifest.
	Root string

	// TemplateDir is the template checkout to copy from.
	TemplateDir string

	// Force converts every skip-if-exists rule into overwrite.
	Force bool

	// Owner is the license copyright holder. Empty skips license generation.
	Owner string

	// License selects the license template. Defaults to LicenseMIT when empty.
	License LicenseKind

	// Year is the copyright year. Zero means the current calendar year.
	Year int

	// Logger receives per-step diagnostics. Nil means a default stderr logger.
	Logger *log.Logger
}

// Reconciler executes the template reconciliation sequence.
type Reconciler struct {
	opts    Options
	logger  *log.Logger
	summary Summary
}

// New creates a Reconciler. Option defaults are resolved here: empty license
// kind becomes LicenseMIT, zero year becomes the current year.
func New(opts Options) *Reconciler {
	if opts.License == "" {
		opts.License = LicenseMIT
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	}
	return &Reconciler{opts: opts, logger: logger}
}

// CheckPreconditions verifies the manifest and the template directory before
// any write. A violation aborts the whole run.
func (r *Reconciler) CheckPreconditions() error {
	if !project.HasManifest(r.opts.Root) {
		return issue.NewErrorContext().
			WithOperation("locate project manifest").
			WithResource(filepath.Join(r.opts.Root, project.ManifestName)).
			WithSuggestion("Run crateops sync from the root of a cargo project").
			Wrap(project.ErrNoManifest).
			BuildError()
	}

	// An unparseable manifest would only surface after most files were
	// already written, when the license step tries to edit it. Reject it
	// up front instead.
	if _, err := project.ReadManifest(r.opts.Root); err != nil {
		return issue.NewErrorContext().
			WithOperation("parse project manifest").
			WithResource(filepath.Join(r.opts.Root, project.ManifestName)).
			WithSuggestion("Fix the TOML syntax in the manifest").
			Wrap(err).
			BuildError()
	}

	if r.opts.TemplateDir == "" {
		return issue.NewErrorContext().
			WithOperation("resolve template directory").
			WithSuggestion("Set CRATEOPS_TEMPLATE_DIR to the template checkout").
			WithSuggestion("Or set template_dir in the crateops config file").
			Wrap(fmt.Errorf("no template directory configured")).
			BuildError()
	}

	info, err := os.Stat(r.opts.TemplateDir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", r.opts.TemplateDir)
	}
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("resolve template directory").
			WithResource(r.opts.TemplateDir).
			WithSuggestion("Check that the path exists and is a directory").
			Wrap(err).
			BuildError()
	}

	return nil
}

// Run executes the full operation sequence and returns the summary.
// Individual step failures are logged and counted but do not stop the run;
// only CheckPreconditions (called internally) aborts early.
func (r *Reconciler) Run() (*Summary, error) {
	if err := r.CheckPreconditions(); err != nil {
		return nil, err
	}

	for _, name := range ConfigFiles {
		r.step(name, func() error { return r.copyFile(name, name) })
	}
	r.step(WorkflowFile, r.syncWorkflow)
	r.step(DevelopmentDoc, func() error { return r.copyFile(DevelopmentDoc, DevelopmentDoc) })
	r.step(ReadmeFile, r.reconcileReadme)
	r.step(HeaderTargetFile, r.appendSourceHeader)
	r.step(LicenseFile, r.generateLicense)

	return &r.summary, nil
}

// step runs one operation, logging and counting a failure without
// propagating it.
func (r *Reconciler) step(name string, fn func() error) {
	if err := fn(); err != nil {
		r.summary.Failed++
		r.logger.Error("step failed", "file", name, "err", err)
	}
}

// copyFile copies src (relative to the template dir) to dst (relative to the
// project root) under the skip/force rule.
func (r *Reconciler) copyFile(src, dst string) error {
	dstPath := filepath.Join(r.opts.Root, dst)

	existed := fileExists(dstPath)
	if existed && !r.opts.Force {
		r.summary.Skipped++
		r.logger.Debug("skipped, destination exists (use --force to overwrite)", "file", dst)
		return nil
	}

	content, err := os.ReadFile(filepath.Join(r.opts.TemplateDir, src))
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", src, err)
	}
	if err := os.WriteFile(dstPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	if existed {
		r.summary.Overwritten++
		r.logger.Info("overwritten", "file", dst)
	} else {
		r.summary.Created++
		r.logger.Info("created", "file", dst)
	}
	return nil
}

// syncWorkflow copies the CI workflow file, creating the nested workflows
// directory first.
func (r *Reconciler) syncWorkflow() error {
	dstPath := filepath.Join(r.opts.Root, filepath.FromSlash(WorkflowFile))
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("failed to create workflows directory: %w", err)
	}
	return r.copyFile(filepath.FromSlash(WorkflowFile), filepath.FromSlash(WorkflowFile))
}

// reconcileReadme creates the README with the pointer line, or prepends the
// pointer line exactly once. Existing content is never discarded, so the
// force flag does not apply here.
func (r *Reconciler) reconcileReadme() error {
	path := filepath.Join(r.opts.Root, ReadmeFile)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := os.WriteFile(path, []byte(ReadmePointerLine+"\n"), 0o644); werr != nil {
			return fmt.Errorf("failed to create %s: %w", ReadmeFile, werr)
		}
		r.summary.Created++
		r.logger.Info("created", "file", ReadmeFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ReadmeFile, err)
	}

	updated, changed := PrependIfAbsent(string(content), ReadmePointerLine, ReadmePointerLine)
	if !changed {
		r.summary.Skipped++
		r.logger.Debug("already up to date", "file", ReadmeFile)
		return nil
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ReadmeFile, err)
	}
	r.summary.Updated++
	r.logger.Info("pointer line prepended", "file", ReadmeFile)
	return nil
}

// appendSourceHeader appends the template's header block to the target
// source file unless the block is already present. A project without the
// target source file is skipped, not failed.
func (r *Reconciler) appendSourceHeader() error {
	block, err := os.ReadFile(filepath.Join(r.opts.TemplateDir, HeaderTemplateFile))
	if err != nil {
		return fmt.Errorf("failed to read template header %s: %w", HeaderTemplateFile, err)
	}

	path := filepath.Join(r.opts.Root, filepath.FromSlash(HeaderTargetFile))
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		r.summary.Skipped++
		r.logger.Debug("skipped, target source file missing", "file", HeaderTargetFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", HeaderTargetFile, err)
	}

	updated, changed := AppendIfAbsent(string(content), string(block))
	if !changed {
		r.summary.Skipped++
		r.logger.Debug("already up to date", "file", HeaderTargetFile)
		return nil
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", HeaderTargetFile, err)
	}
	r.summary.Updated++
	r.logger.Info("header block appended", "file", HeaderTargetFile)
	return nil
}

// generateLicense renders and writes the LICENSE file and records the
// matching SPDX identifier in the project manifest. No resolvable owner
// skips the step with a diagnostic; an existing LICENSE without force skips
// it and leaves the manifest untouched.
func (r *Reconciler) generateLicense() error {
	if r.opts.Owner == "" {
		r.summary.Skipped++
		r.logger.Warn("skipped, no owner name resolvable (use --name, --private or CRATEOPS_OWNER)", "file", LicenseFile)
		return nil
	}

	path := filepath.Join(r.opts.Root, LicenseFile)
	existed := fileExists(path)
	if existed && !r.opts.Force {
		r.summary.Skipped++
		r.logger.Debug("skipped, destination exists (use --force to overwrite)", "file", LicenseFile)
		return nil
	}

	text, err := RenderLicense(r.opts.License, r.opts.Owner, r.opts.Year)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", LicenseFile, err)
	}
	if existed {
		r.summary.Overwritten++
		r.logger.Info("overwritten", "file", LicenseFile, "license", r.opts.License)
	} else {
		r.summary.Created++
		r.logger.Info("created", "file", LicenseFile, "license", r.opts.License)
	}

	changed, err := project.SetManifestLicense(r.opts.Root, r.opts.License.SPDX())
	if err != nil {
		return err
	}
	if changed {
		r.summary.Updated++
		r.logger.Info("license field updated", "file", project.ManifestName)
	}
	return nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
