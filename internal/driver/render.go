package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/xavierguihot/scalafmt/internal/render"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/wire"
)

// PlanExt is the extension of serialized render-plan files.
const PlanExt = ".fmtplan"

// Options configures a rendering run.
type Options struct {
	// Check leaves target files untouched; Changed reports whether rendering
	// would update them.
	Check bool
	// Stdout returns formatted content in the results instead of writing it.
	Stdout bool
	// Jobs caps rendering parallelism; zero means GOMAXPROCS.
	Jobs int
	// Style applies to every plan; nil means the stock configuration.
	Style *style.Config
	// Observer, when set, receives per-file progress events.
	Observer Observer
}

// Result captures the outcome of rendering a single plan.
type Result struct {
	// PlanPath is the plan file that was decoded.
	PlanPath string
	// Path is the target source file the plan renders.
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// RenderPaths renders the given plan files or directories (recursively
// collecting plan files) in parallel. Results come back in the deterministic
// sorted order of the collected files; per-file failures are recorded in the
// corresponding Result, not returned.
func RenderPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectPlanFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("render: no plan files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = renderSingle(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func renderSingle(planPath string, opts Options) Result {
	res := Result{PlanPath: planPath}
	obs := opts.Observer

	obs.emit(planPath, StageDecode, false, nil)
	plan, err := readPlan(planPath)
	if err != nil {
		res.Err = err
		obs.emit(planPath, StageDecode, true, err)
		return res
	}
	res.Path = targetPath(planPath, plan.Path)
	obs.emit(planPath, StageDecode, true, nil)

	obs.emit(planPath, StageRender, false, nil)
	cfg := opts.Style
	if cfg == nil {
		cfg = style.Default()
	}
	doc, err := plan.Doc(cfg)
	if err == nil {
		var out string
		out, err = render.Render(doc)
		res.Formatted = []byte(out)
	}
	if err != nil {
		res.Err = fmt.Errorf("render %s: %w", res.Path, err)
		obs.emit(planPath, StageRender, true, err)
		return res
	}
	obs.emit(planPath, StageRender, true, nil)

	obs.emit(planPath, StageWrite, false, nil)
	err = res.finish(opts)
	obs.emit(planPath, StageWrite, true, err)
	return res
}

// finish compares the rendered text against the target file and applies the
// write policy from the options.
func (r *Result) finish(opts Options) error {
	current, readErr := os.ReadFile(r.Path)
	r.Changed = readErr != nil || !bytes.Equal(current, r.Formatted)

	if opts.Check || opts.Stdout || !r.Changed {
		if !opts.Stdout {
			r.Formatted = nil
		}
		return nil
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(r.Path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(r.Path, r.Formatted, mode.Perm()); err != nil {
		r.Err = err
		return err
	}
	r.Formatted = nil
	return nil
}

func readPlan(path string) (*wire.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return wire.Read(f)
}

// targetPath resolves the plan's recorded target against the plan file's
// directory when it is relative.
func targetPath(planPath, target string) string {
	if target == "" {
		return planPath
	}
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(planPath), target)
}

// ListPlanFiles returns the sorted plan files a RenderPaths call over the
// same paths would process, for callers that need the list up front.
func ListPlanFiles(ctx context.Context, paths []string) ([]string, error) {
	return collectPlanFiles(ctx, paths)
}

func collectPlanFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == PlanExt {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
