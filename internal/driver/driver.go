package driver

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"vk-helpers-generator/internal/diagnostic"
	"vk-helpers-generator/internal/gen"
	"vk-helpers-generator/internal/patch"
	"vk-helpers-generator/internal/table"
)

// ErrStale marks a check that found out-of-date files.
var ErrStale = errors.New("generated regions are out of date")

// FileResult describes what happened to one target file.
type FileResult struct {
	Path string
	// Regions is the number of regions patched in the file.
	Regions int
	// Changed is set when the regenerated text differs from the file.
	Changed bool
	// Diff is a unified diff from the file to the generated text.
	Diff string
}

// Report collects per-file results in processing order.
type Report struct {
	Files    []FileResult
	Warnings []diagnostic.Diagnostic
}

// Changed returns the files whose content differs from the generated one.
func (r Report) Changed() []FileResult {
	var out []FileResult

	for _, f := range r.Files {
		if f.Changed {
			out = append(out, f)
		}
	}

	return out
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(d *Driver) {
		d.log = log
	}
}

// Driver applies jobs to their target files.
type Driver struct {
	log *zap.SugaredLogger
}

// New returns a Driver.
func New(opts ...Option) *Driver {
	d := &Driver{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run regenerates every region and rewrites the files whose content
// changed. All files are rendered before the first write, so a missing
// sentinel or unreadable file aborts the run with nothing written.
// Rewritten files have trailing whitespace stripped from every line,
// including lines outside the regions.
func (d *Driver) Run(jobs []Job) (Report, error) {
	report, rendered, err := d.render(jobs)
	if err != nil {
		return report, err
	}

	for i, res := range report.Files {
		if !res.Changed {
			d.log.Infow("up to date", "path", res.Path, "regions", res.Regions)
			continue
		}

		if err := writeFileAtomic(res.Path, []byte(rendered[i])); err != nil {
			return report, err
		}

		d.log.Infow("updated", "path", res.Path, "regions", res.Regions)
	}

	return report, nil
}

// Check regenerates every region in memory and reports, with a diff, the
// files that would change. Nothing is written.
func (d *Driver) Check(jobs []Job) (Report, error) {
	report, _, err := d.render(jobs)
	if err != nil {
		return report, err
	}

	for _, res := range report.Files {
		d.log.Infow("checked", "path", res.Path, "regions", res.Regions, "stale", res.Changed)
	}

	return report, nil
}

// render validates the tables and produces the new text of every file.
// rendered[i] belongs to report.Files[i].
func (d *Driver) render(jobs []Job) (Report, []string, error) {
	var report Report

	warnings, err := validateTables(jobs)
	if err != nil {
		return report, nil, err
	}

	report.Warnings = warnings
	for _, w := range warnings {
		d.log.Warnw("entry table warning", "table", w.Table, "index", w.Index, "code", w.Code, "message", w.Message)
	}

	var rendered []string

	for _, group := range groupByPath(jobs) {
		res, after, err := d.renderFile(group.path, group.jobs)
		if err != nil {
			return report, nil, err
		}

		report.Files = append(report.Files, res)
		rendered = append(rendered, after)
	}

	return report, rendered, nil
}

func (d *Driver) renderFile(path string, jobs []Job) (FileResult, string, error) {
	res := FileResult{Path: path, Regions: len(jobs)}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, "", errors.Wrapf(err, "failed to read %s", path)
	}

	before := string(data)
	lines := patch.SplitLines(before)

	for _, job := range jobs {
		region := job.Lines()

		if err := gen.CheckBalance(region); err != nil {
			return res, "", errors.Wrapf(err, "region %s of %s", job, path)
		}

		lines, err = patch.ReplaceRegion(lines, job.Sentinels, region)
		if err != nil {
			return res, "", sentinelError(err, path, job)
		}

		d.log.Debugw("patched region", "path", path, "region", job.String(), "lines", len(region))
	}

	after := patch.JoinLines(lines)

	res.Changed = after != before
	if res.Changed {
		res.Diff = unifiedDiff(path, before, after)
	}

	return res, after, nil
}

func sentinelError(err error, path string, job Job) error {
	var se *patch.SentinelNotFoundError
	if errors.As(err, &se) {
		se.Path = path
		err = errors.WithHintf(err, "the %s region needs both sentinel lines, verbatim and in order", job)
	}

	return errors.Wrapf(err, "region %s", job)
}

func unifiedDiff(path, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}

type fileJobs struct {
	path string
	jobs []Job
}

// groupByPath keeps first-seen file order and job order within a file.
// Paths that spell the same file differently ("x.h", "./x.h", its
// absolute form) share one group, named by the first spelling seen.
func groupByPath(jobs []Job) []fileJobs {
	var groups []fileJobs

	index := map[string]int{}

	for _, j := range jobs {
		key := pathKey(j.Path)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, fileJobs{path: j.Path})
		}

		groups[i].jobs = append(groups[i].jobs, j)
	}

	return groups
}

func pathKey(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}

	return filepath.Clean(p)
}

// validateTables validates each distinct table once.
func validateTables(jobs []Job) ([]diagnostic.Diagnostic, error) {
	var all diagnostic.Diagnostics

	seen := map[string]bool{}

	for _, j := range jobs {
		if j.Emitter.Formatter() == nil {
			return nil, errors.Newf("region %s of %s has no emitter", j, j.Path)
		}

		if seen[j.Table.Name] {
			continue
		}

		seen[j.Table.Name] = true
		all.Merge(*table.Validate(j.Table))
	}

	if err := all.Error(); err != nil {
		return all.Warnings, err
	}

	return all.Warnings, nil
}
