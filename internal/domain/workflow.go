// Package domain implements the rule-driven scanners behind the solscan CLI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/mouse-blink/solscan/internal/adapter"
	"github.com/mouse-blink/solscan/internal/controller"
	"github.com/mouse-blink/solscan/internal/domain/rules"
	m "github.com/mouse-blink/solscan/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrRootNotFound is returned before any scanning when the root is missing.
	ErrRootNotFound = errors.New("root not found")
	// ErrBlockingIssues signals a completed run whose outcome must fail the process.
	ErrBlockingIssues = errors.New("blocking issues found")
)

// ScanArgs configures an antipattern scan.
type ScanArgs struct {
	Root m.Path
	// ConfigPath is optional; when empty <root>/.solscan.yaml is used if present.
	ConfigPath m.Path
	Parallel   int
	Timeout    time.Duration
	Exclude    []string
	Disable    []string
}

// ImportArgs configures an import verification scan.
type ImportArgs struct {
	Root    m.Path
	Exclude []string
}

// SpecArgs lists specification documents to validate.
type SpecArgs struct {
	Files []m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	// Scan runs Analyze and displays the report. It returns ErrBlockingIssues
	// when a critical rule fired.
	Scan(ctx context.Context, args ScanArgs) error
	Analyze(ctx context.Context, args ScanArgs) (m.Report, error)
	VerifyImports(ctx context.Context, args ImportArgs) error
	ValidateSpecs(args SpecArgs) error
	ListRules() error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	configStore adapter.ConfigStore
	ui          controller.UI
	log         *zap.SugaredLogger
	catalog     []m.Rule
}

// NewWorkflow creates a Workflow scanning with the built-in antipattern catalog.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	configStore adapter.ConfigStore,
	ui controller.UI,
	log *zap.SugaredLogger,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		configStore: configStore,
		ui:          ui,
		log:         log,
		catalog:     rules.Antipatterns(),
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	report, err := w.Analyze(ctx, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	if report.ExitCode() != 0 {
		return ErrBlockingIssues
	}

	return nil
}

func (w *workflow) Analyze(ctx context.Context, args ScanArgs) (m.Report, error) {
	if err := w.checkRoot(args.Root); err != nil {
		return m.Report{}, err
	}

	opts, err := w.resolveOptions(args)
	if err != nil {
		return m.Report{}, err
	}

	base, err := NewCatalog(w.catalog)
	if err != nil {
		return m.Report{}, err
	}

	catalog, err := base.Without(opts.Disable...)
	if err != nil {
		return m.Report{}, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	agg := NewAggregator(args.Root, catalog)
	scanner := NewLineScanner(w.fsAdapter, catalog, opts.ExcerptLength, w.log)

	if err := w.scanFiles(ctx, args.Root, opts, scanner, agg); err != nil {
		return m.Report{}, fmt.Errorf("scan aborted: %w", err)
	}

	runner := NewSpecialCheckRunner(w.fsAdapter, opts.Layout)

	for _, rule := range catalog.specialRules() {
		res, err := runner.Run(args.Root, rule.Check)
		if err != nil {
			return m.Report{}, fmt.Errorf("rule %s: %w", rule.ID, err)
		}

		agg.AddSpecial(rule.ID, res)
	}

	result := agg.Result()
	w.log.Debugw("scan complete",
		"root", args.Root,
		"files", result.FilesScanned,
		"unreadable", len(result.Unreadable),
	)

	return BuildReport(result, opts.DisplayLimit), nil
}

// scanFiles fans the walked files out to a bounded worker pool and merges
// the results in walk order.
func (w *workflow) scanFiles(ctx context.Context, root m.Path, opts Options, scanner LineScanner, agg *Aggregator) error {
	threads := opts.Parallel
	if threads <= 0 {
		threads = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var (
		mu    sync.Mutex
		paths []m.Path
	)

	scans := make(map[int]m.FileScan)

	filter := adapter.WalkFilter{Extensions: opts.Extensions, ExcludeDirs: opts.ExcludeDirs}

	walkErr := w.fsAdapter.Walk(root, filter, func(path m.Path) error {
		if err := gctx.Err(); err != nil {
			return err
		}

		idx := len(paths)
		paths = append(paths, path)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			scan := scanner.ScanFile(path)

			mu.Lock()
			scans[idx] = scan
			mu.Unlock()

			return nil
		})

		return nil
	})

	waitErr := g.Wait()

	if walkErr != nil {
		return walkErr
	}

	if waitErr != nil {
		return waitErr
	}

	for i, path := range paths {
		rel, err := w.fsAdapter.RelPath(root, path)
		if err != nil {
			return err
		}

		agg.AddFile(rel, scans[i])
	}

	return nil
}

func (w *workflow) checkRoot(root m.Path) error {
	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: path '%s' does not exist", ErrRootNotFound, root)
		}

		return fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: '%s' is not a directory", ErrRootNotFound, root)
	}

	return nil
}

func (w *workflow) resolveOptions(args ScanArgs) (Options, error) {
	cfgPath, required := args.ConfigPath, true
	if cfgPath == "" {
		cfgPath = w.fsAdapter.JoinPath(string(args.Root), adapter.DefaultConfigFile)
		required = false
	}

	cfg, err := w.configStore.Load(cfgPath, required)
	if err != nil {
		return Options{}, err
	}

	opts := DefaultOptions().Merge(cfg)
	opts.ExcludeDirs = appendUnique(opts.ExcludeDirs, args.Exclude...)
	opts.Disable = appendUnique(opts.Disable, args.Disable...)

	if args.Parallel > 0 {
		opts.Parallel = args.Parallel
	}

	if args.Timeout > 0 {
		opts.Timeout = args.Timeout
	}

	return opts, nil
}

func (w *workflow) VerifyImports(ctx context.Context, args ImportArgs) error {
	if err := w.checkRoot(args.Root); err != nil {
		return err
	}

	verifier, err := NewImportVerifier(w.fsAdapter, rules.ImportLanguages(), w.log)
	if err != nil {
		return err
	}

	exclude := appendUnique(clone(rules.ImportExcludedDirs), args.Exclude...)

	report, err := verifier.Verify(ctx, args.Root, exclude)
	if err != nil {
		return fmt.Errorf("import scan aborted: %w", err)
	}

	if err := w.ui.DisplayImportReport(report); err != nil {
		return err
	}

	if report.ExitCode() != 0 {
		return ErrBlockingIssues
	}

	return nil
}

func (w *workflow) ValidateSpecs(args SpecArgs) error {
	if len(args.Files) == 0 {
		return fmt.Errorf("at least one specification file is required")
	}

	validator := NewSpecValidator(w.fsAdapter)
	allValid := true

	for _, file := range args.Files {
		result := validator.Validate(file)
		if !result.Valid() {
			allValid = false
		}

		if err := w.ui.DisplaySpecValidation(result); err != nil {
			return err
		}
	}

	if !allValid {
		return ErrBlockingIssues
	}

	return nil
}

func (w *workflow) ListRules() error {
	catalog, err := NewCatalog(w.catalog)
	if err != nil {
		return err
	}

	return w.ui.DisplayRules(catalog.Rules())
}
