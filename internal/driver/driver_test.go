package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"vk-helpers-generator/internal/config"
	"vk-helpers-generator/internal/gen"
	"vk-helpers-generator/internal/patch"
	"vk-helpers-generator/internal/table"
)

var (
	instSentinels = patch.GeneratedSentinels(patch.KindInstanceLoader)
	devSentinels  = patch.GeneratedSentinels(patch.KindDeviceLoader)
	extSentinels  = patch.GeneratedSentinels(patch.KindExtension)
)

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func smallTable() table.Table {
	return table.Table{Name: "small", Entries: []table.Entry{
		table.Fn("f1"),
		table.Fn("f2", "COND"),
		table.Fn("f3", "COND"),
		table.Blank(),
		table.Fn("f4"),
	}}
}

func TestRun_SingleRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vk_helpers.c")
	writeFile(t, path, "int x;", devSentinels.Begin, "old line", devSentinels.End, "int y;")

	report, err := New().Run([]Job{{Table: smallTable(), Path: path, Sentinels: devSentinels, Emitter: gen.EmitDeviceProc}})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.True(t, report.Files[0].Changed)

	want := strings.Join([]string{
		"int x;",
		devSentinels.Begin,
		"\tvk->f1 = GET_DEV_PROC(vk, f1);",
		"#if defined(COND)",
		"\tvk->f2 = GET_DEV_PROC(vk, f2);",
		"\tvk->f3 = GET_DEV_PROC(vk, f3);",
		"",
		"#endif  // defined(COND)",
		"",
		"\tvk->f4 = GET_DEV_PROC(vk, f4);",
		devSentinels.End,
		"int y;",
	}, "\n") + "\n"
	assert.Equal(t, want, readFile(t, path))
}

func TestRun_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vk_helpers.h")
	writeFile(t, path, "struct vk_bundle {", instSentinels.Begin, instSentinels.End, "", devSentinels.Begin, devSentinels.End, "};")

	jobs := []Job{
		{Table: table.Instance(), Path: path, Sentinels: instSentinels, Emitter: gen.EmitMember},
		{Table: table.Device(), Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember},
	}

	d := New()

	_, err := d.Run(jobs)
	require.NoError(t, err)

	first := readFile(t, path)

	report, err := d.Run(jobs)
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, path))
	assert.Empty(t, report.Changed())
	assert.Equal(t, 2, report.Files[0].Regions)
}

func TestRun_RegionOrderDoesNotMatter(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.h")
	b := filepath.Join(dir, "b.h")

	doc := []string{"// head", instSentinels.Begin, "x", instSentinels.End, "", devSentinels.Begin, "y", devSentinels.End, "// tail"}
	writeFile(t, a, doc...)
	writeFile(t, b, doc...)

	inst := Job{Table: table.Instance(), Sentinels: instSentinels, Emitter: gen.EmitMember}
	dev := Job{Table: table.Device(), Sentinels: devSentinels, Emitter: gen.EmitMember}

	inst.Path, dev.Path = a, a
	_, err := New().Run([]Job{inst, dev})
	require.NoError(t, err)

	inst.Path, dev.Path = b, b
	_, err = New().Run([]Job{dev, inst})
	require.NoError(t, err)

	assert.Equal(t, readFile(t, a), readFile(t, b))
}

func TestRun_MissingEndSentinelLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.h")
	bad := filepath.Join(dir, "bad.c")

	writeFile(t, good, devSentinels.Begin, "old", devSentinels.End)
	writeFile(t, bad, devSentinels.Begin, "old")

	goodBefore := readFile(t, good)
	badBefore := readFile(t, bad)

	_, err := New().Run([]Job{
		{Table: smallTable(), Path: good, Sentinels: devSentinels, Emitter: gen.EmitMember},
		{Table: smallTable(), Path: bad, Sentinels: devSentinels, Emitter: gen.EmitDeviceProc},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, patch.ErrSentinelNotFound))

	var se *patch.SentinelNotFoundError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, bad, se.Path)
	assert.Equal(t, devSentinels.End, se.Sentinel)
	assert.Contains(t, err.Error(), bad)

	assert.Equal(t, goodBefore, readFile(t, good))
	assert.Equal(t, badBefore, readFile(t, bad))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files left behind")
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.c")

	_, err := New().Run([]Job{{Table: smallTable(), Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func TestRun_InvalidTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.h")
	writeFile(t, path, devSentinels.Begin, devSentinels.End)
	before := readFile(t, path)

	bad := table.Table{Name: "bad", Entries: []table.Entry{table.Fn("a"), table.Fn("a")}}

	_, err := New().Run([]Job{{Table: bad, Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_entry")
	assert.Equal(t, before, readFile(t, path))
}

func TestRun_InvalidEmitter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.h")
	writeFile(t, path, devSentinels.Begin, devSentinels.End)

	_, err := New().Run([]Job{{Table: smallTable(), Path: path, Sentinels: devSentinels}})
	require.Error(t, err)
}

func TestRun_KeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.h")
	writeFile(t, path, devSentinels.Begin, devSentinels.End)
	require.NoError(t, os.Chmod(path, 0o600))

	_, err := New().Run([]Job{{Table: smallTable(), Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRun_StripsTrailingWhitespaceAndAddsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.h")
	require.NoError(t, os.WriteFile(path, []byte("a   \n"+devSentinels.Begin+"\n"+devSentinels.End+"\nb"), 0o644))

	_, err := New().Run([]Job{{Table: table.Table{Name: "t", Entries: []table.Entry{table.Fn("f")}}, Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember}})
	require.NoError(t, err)

	assert.Equal(t, "a\n"+devSentinels.Begin+"\n\tPFN_f f;\n"+devSentinels.End+"\nb\n", readFile(t, path))
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vk_helpers.c")
	writeFile(t, path, devSentinels.Begin, "old line", devSentinels.End)
	before := readFile(t, path)

	jobs := []Job{{Table: smallTable(), Path: path, Sentinels: devSentinels, Emitter: gen.EmitDeviceProc}}
	d := New()

	report, err := d.Check(jobs)
	require.NoError(t, err)
	require.Len(t, report.Changed(), 1)
	assert.Equal(t, before, readFile(t, path), "check must not write")

	diff := report.Changed()[0].Diff
	assert.Contains(t, diff, "-old line")
	assert.Contains(t, diff, "+\tvk->f1 = GET_DEV_PROC(vk, f1);")
	assert.Contains(t, diff, path+" (generated)")

	_, err = d.Run(jobs)
	require.NoError(t, err)

	report, err = d.Check(jobs)
	require.NoError(t, err)
	assert.Empty(t, report.Changed())
}

func TestRun_LogsWarningsAndUpdates(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	path := filepath.Join(t.TempDir(), "x.h")
	writeFile(t, path, devSentinels.Begin, devSentinels.End)

	tbl := table.Table{Name: "t", Entries: []table.Entry{table.Blank(), table.Fn("f")}}

	report, err := New(WithLogger(zap.New(core).Sugar())).Run([]Job{{Table: tbl, Path: path, Sentinels: devSentinels, Emitter: gen.EmitMember}})
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "leading_blank", report.Warnings[0].Code)

	assert.Equal(t, 1, logs.FilterMessage("entry table warning").Len())
	assert.Equal(t, 1, logs.FilterMessage("patched region").Len())
	assert.Equal(t, 1, logs.FilterMessage("updated").Len())
}

func TestRun_SameFileDifferentSpellings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.h")
	writeFile(t, path, instSentinels.Begin, instSentinels.End, devSentinels.Begin, devSentinels.End)

	inst := table.Table{Name: "inst", Entries: []table.Entry{table.Fn("a")}}
	dev := table.Table{Name: "dev", Entries: []table.Entry{table.Fn("b")}}

	report, err := New().Run([]Job{
		{Table: inst, Path: path, Sentinels: instSentinels, Emitter: gen.EmitMember},
		{Table: dev, Path: dir + string(filepath.Separator) + "." + string(filepath.Separator) + "x.h", Sentinels: devSentinels, Emitter: gen.EmitMember},
	})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, 2, report.Files[0].Regions)

	got := readFile(t, path)
	assert.Contains(t, got, "\tPFN_a a;")
	assert.Contains(t, got, "\tPFN_b b;")
}

func TestGroupByPath_RelativeAndAbsolute(t *testing.T) {
	abs, err := filepath.Abs("x.h")
	require.NoError(t, err)

	groups := groupByPath([]Job{{Path: "x.h"}, {Path: abs}, {Path: "./sub/../x.h"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "x.h", groups[0].path)
	assert.Len(t, groups[0].jobs, 3)
}

func TestGroupByPath(t *testing.T) {
	jobs := []Job{
		{Path: "h", Table: table.Table{Name: "1"}},
		{Path: "c", Table: table.Table{Name: "2"}},
		{Path: "h", Table: table.Table{Name: "3"}},
	}

	groups := groupByPath(jobs)
	require.Len(t, groups, 2)
	assert.Equal(t, "h", groups[0].path)
	assert.Equal(t, "1", groups[0].jobs[0].Table.Name)
	assert.Equal(t, "3", groups[0].jobs[1].Table.Name)
	assert.Equal(t, "c", groups[1].path)
}

func TestDefaultJobs(t *testing.T) {
	cfg := &config.Config{Root: "repo", Header: "vk_helpers.h", Impl: "vk_helpers.c"}

	jobs, err := DefaultJobs(cfg, table.NewSet(nil))
	require.NoError(t, err)
	require.Len(t, jobs, 4)

	h := filepath.Join("repo", "vk_helpers.h")
	c := filepath.Join("repo", "vk_helpers.c")

	assert.Equal(t, h, jobs[0].Path)
	assert.Equal(t, table.InstanceName, jobs[0].Table.Name)
	assert.Equal(t, gen.EmitMember, jobs[0].Emitter)
	assert.Equal(t, instSentinels, jobs[0].Sentinels)

	assert.Equal(t, h, jobs[1].Path)
	assert.Equal(t, devSentinels, jobs[1].Sentinels)

	assert.Equal(t, c, jobs[2].Path)
	assert.Equal(t, gen.EmitInstanceProc, jobs[2].Emitter)
	assert.Equal(t, c, jobs[3].Path)
	assert.Equal(t, gen.EmitDeviceProc, jobs[3].Emitter)

	cfg.Extensions = true
	jobs, err = DefaultJobs(cfg, table.NewSet(nil))
	require.NoError(t, err)
	require.Len(t, jobs, 5)
	assert.Equal(t, table.ExtensionsName, jobs[2].Table.Name)
	assert.Equal(t, extSentinels, jobs[2].Sentinels)
	assert.Equal(t, gen.EmitExtensionFlag, jobs[2].Emitter)
}

func TestJobsFromConfig(t *testing.T) {
	cfg := &config.Config{Root: "/r", Header: "h", Impl: "c", Regions: []config.RegionConfig{
		{Table: "device", File: "dev.c", Kind: "device loader", Emitter: "device"},
	}}

	jobs, err := JobsFromConfig(cfg, table.NewSet(nil))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, filepath.Join("/r", "dev.c"), jobs[0].Path)
	assert.Equal(t, "device/DeviceProc", jobs[0].String())

	cfg.Regions[0].Emitter = "bogus"
	_, err = JobsFromConfig(cfg, table.NewSet(nil))
	require.Error(t, err)

	cfg.Regions[0].Emitter = "device"
	cfg.Regions[0].Table = "bogus"
	_, err = JobsFromConfig(cfg, table.NewSet(nil))
	require.Error(t, err)

	cfg.Regions = nil
	jobs, err = JobsFromConfig(cfg, table.NewSet(nil))
	require.NoError(t, err)
	assert.Len(t, jobs, 4)
}
