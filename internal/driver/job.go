package driver

import (
	"vk-helpers-generator/internal/config"
	"vk-helpers-generator/internal/gen"
	"vk-helpers-generator/internal/patch"
	"vk-helpers-generator/internal/table"
)

// Job regenerates one region of one file.
type Job struct {
	Table     table.Table
	Path      string
	Sentinels patch.Sentinels
	Emitter   gen.Emitter
}

// Lines renders the region content for the job.
func (j Job) Lines() []string {
	return gen.Lines(j.Table.Entries, j.Emitter.Formatter())
}

// String identifies the job in logs and errors.
func (j Job) String() string {
	return j.Table.Name + "/" + j.Emitter.String()
}

// DefaultJobs returns the regions of vk_helpers.{h,c}: instance and device
// members in the header, plus extension flags when enabled, and instance
// and device loader calls in the implementation.
func DefaultJobs(cfg *config.Config, tables *table.Set) ([]Job, error) {
	regions := []config.RegionConfig{
		{Table: table.InstanceName, File: cfg.Header, Kind: patch.KindInstanceLoader, Emitter: "member"},
		{Table: table.DeviceName, File: cfg.Header, Kind: patch.KindDeviceLoader, Emitter: "member"},
	}

	if cfg.Extensions {
		regions = append(regions, config.RegionConfig{
			Table: table.ExtensionsName, File: cfg.Header, Kind: patch.KindExtension, Emitter: "extension",
		})
	}

	regions = append(regions,
		config.RegionConfig{Table: table.InstanceName, File: cfg.Impl, Kind: patch.KindInstanceLoader, Emitter: "instance"},
		config.RegionConfig{Table: table.DeviceName, File: cfg.Impl, Kind: patch.KindDeviceLoader, Emitter: "device"},
	)

	return buildJobs(cfg, tables, regions)
}

// JobsFromConfig returns the configured regions, or DefaultJobs when the
// configuration lists none.
func JobsFromConfig(cfg *config.Config, tables *table.Set) ([]Job, error) {
	if len(cfg.Regions) == 0 {
		return DefaultJobs(cfg, tables)
	}

	return buildJobs(cfg, tables, cfg.Regions)
}

func buildJobs(cfg *config.Config, tables *table.Set, regions []config.RegionConfig) ([]Job, error) {
	jobs := make([]Job, 0, len(regions))

	for _, r := range regions {
		t, err := tables.Lookup(r.Table)
		if err != nil {
			return nil, err
		}

		emitter, err := gen.ParseEmitter(r.Emitter)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, Job{
			Table:     t,
			Path:      cfg.Resolve(r.File),
			Sentinels: patch.GeneratedSentinels(r.Kind),
			Emitter:   emitter,
		})
	}

	return jobs, nil
}
