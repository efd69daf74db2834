package project

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sparkentic/sparkentic/internal/materialize"
	"github.com/sparkentic/sparkentic/internal/templates"
)

const (
	CoreDir      = ".sparkentic-core"
	ClaudeDir    = ".claude"
	CommandsDir  = ".claude/commands/sparkentic"
	ManifestFile = "pyproject.toml"
)

// DefaultDirs are the conventional directories of a SPARKENTIC project.
var DefaultDirs = []string{"docs", "src", "src/tools", "tests"}

// TemplateSet maps a template directory onto a project directory.
type TemplateSet struct {
	Name   string
	Source string // relative to the template root
	Target string // relative to the project directory
}

// DefaultSets returns the template sets installed by init.
func DefaultSets() []TemplateSet {
	return []TemplateSet{
		{Name: "core", Source: templates.CoreSet, Target: CoreDir},
		{Name: "claude", Source: templates.ClaudeSet, Target: ClaudeDir},
	}
}

// StepKind identifies what an init step acted on.
type StepKind string

const (
	KindTemplate StepKind = "template"
	KindDir      StepKind = "dir"
	KindManifest StepKind = "manifest"
)

// StepStatus is the outcome of an init step.
type StepStatus string

const (
	StatusCreated StepStatus = "created" // written by this run
	StatusExists  StepStatus = "exists"  // already present, left alone
	StatusSkipped StepStatus = "skipped" // template set not available
	StatusPlanned StepStatus = "planned" // dry run
)

// Step records one action taken (or planned) by Init.
type Step struct {
	Kind   StepKind   `json:"kind"`
	Path   string     `json:"path"` // slash-separated, relative to the project
	Status StepStatus `json:"status"`
	Files  int        `json:"files,omitempty"`
	Detail string     `json:"detail,omitempty"`
}

// Report is the outcome of Init.
type Report struct {
	Dir   string `json:"dir"`
	Steps []Step `json:"steps"`
}

// Changed returns the steps that created something or would in a dry run.
func (r *Report) Changed() []Step {
	var out []Step
	for _, s := range r.Steps {
		if s.Status == StatusCreated || s.Status == StatusPlanned {
			out = append(out, s)
		}
	}
	return out
}

// Options configures Init. Zero values select the defaults.
type Options struct {
	Dir       string
	Templates afero.Fs // default templates.Embedded()
	Target    afero.Fs // default the OS filesystem
	Sets      []TemplateSet
	Dirs      []string
	Manifest  *ManifestData // default NewManifestData(Dir)
	DryRun    bool
	Logger    *slog.Logger
}

func (o *Options) applyDefaults() {
	if o.Templates == nil {
		o.Templates = templates.Embedded()
	}
	if o.Target == nil {
		o.Target = afero.NewOsFs()
	}
	if o.Sets == nil {
		o.Sets = DefaultSets()
	}
	if o.Dirs == nil {
		o.Dirs = DefaultDirs
	}
	if o.Manifest == nil {
		o.Manifest = NewManifestData(o.Dir)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Init sets up a project in opts.Dir. Template sets are re-installed on every
// run, overwriting the managed files; directories and the manifest are only
// created when missing. The first failure stops Init and the partial report
// is returned with the error.
func Init(opts Options) (*Report, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("project directory is required")
	}
	opts.applyDefaults()

	report := &Report{Dir: opts.Dir}

	for _, set := range opts.Sets {
		step, err := installSet(opts, set)
		if err != nil {
			return report, fmt.Errorf("installing %s: %w", set.Target, err)
		}
		report.Steps = append(report.Steps, step)
	}

	for _, dir := range opts.Dirs {
		step, err := ensureDir(opts, dir)
		if err != nil {
			return report, err
		}
		report.Steps = append(report.Steps, step)
	}

	step, err := writeManifest(opts)
	if err != nil {
		return report, err
	}
	report.Steps = append(report.Steps, step)

	return report, nil
}

func installSet(opts Options, set TemplateSet) (Step, error) {
	step := Step{Kind: KindTemplate, Path: set.Target}

	// A template root may omit a set; that set is skipped, not an error.
	exists, err := afero.DirExists(opts.Templates, set.Source)
	if err != nil {
		return step, fmt.Errorf("checking template set %s: %w", set.Name, err)
	}
	if !exists {
		step.Status = StatusSkipped
		step.Detail = fmt.Sprintf("template set %q not found", set.Name)
		opts.Logger.Info("template set not found", "set", set.Name, "source", set.Source)
		return step, nil
	}

	if opts.DryRun {
		step.Status = StatusPlanned
		return step, nil
	}

	dst := filepath.Join(opts.Dir, filepath.FromSlash(set.Target))
	result, err := materialize.Materialize(opts.Templates, set.Source, opts.Target, dst,
		materialize.WithExclude(materialize.DefaultExcludes...),
		materialize.WithLogger(opts.Logger),
	)
	if err != nil {
		return step, err
	}

	step.Status = StatusCreated
	step.Files = len(result.Files)
	opts.Logger.Info("installed template set", "set", set.Name, "target", dst, "files", step.Files)
	return step, nil
}

func ensureDir(opts Options, dir string) (Step, error) {
	step := Step{Kind: KindDir, Path: path.Clean(dir)}
	full := filepath.Join(opts.Dir, filepath.FromSlash(dir))

	exists, err := afero.DirExists(opts.Target, full)
	if err != nil {
		return step, fmt.Errorf("checking %s: %w", full, err)
	}
	switch {
	case exists:
		step.Status = StatusExists
	case opts.DryRun:
		step.Status = StatusPlanned
	default:
		if err := opts.Target.MkdirAll(full, 0755); err != nil {
			return step, fmt.Errorf("creating %s: %w", full, err)
		}
		step.Status = StatusCreated
	}
	return step, nil
}

func writeManifest(opts Options) (Step, error) {
	step := Step{Kind: KindManifest, Path: ManifestFile}
	full := filepath.Join(opts.Dir, ManifestFile)

	exists, err := afero.Exists(opts.Target, full)
	if err != nil {
		return step, fmt.Errorf("checking %s: %w", full, err)
	}
	if exists {
		step.Status = StatusExists
		return step, nil
	}

	content, err := RenderManifest(opts.Templates, opts.Manifest)
	if err != nil {
		return step, err
	}
	if opts.DryRun {
		step.Status = StatusPlanned
		return step, nil
	}

	if err := afero.WriteFile(opts.Target, full, content, 0644); err != nil {
		return step, fmt.Errorf("writing %s: %w", full, err)
	}
	step.Status = StatusCreated
	return step, nil
}
