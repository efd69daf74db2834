package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sparkentic/sparkentic/internal/coreconfig"
	"github.com/sparkentic/sparkentic/internal/templates"
)

// Health is the status of a single diagnostic finding.
type Health string

const (
	HealthOK   Health = "ok"
	HealthWarn Health = "warn"
	HealthFail Health = "fail"
	HealthMiss Health = "miss"
)

// Finding is one line of a project diagnosis.
type Finding struct {
	Health  Health `json:"health"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// DiagnoseOptions configures Diagnose. Zero values select the defaults.
type DiagnoseOptions struct {
	Dir     string
	Target  afero.Fs // default the OS filesystem
	Dirs    []string // default DefaultDirs
	Bundled []byte   // core config shipped with the binary; default templates.BundledCoreConfig()
}

// Diagnose inspects an initialized project and reports missing, invalid and
// outdated pieces. It never modifies the project.
func Diagnose(opts DiagnoseOptions) []Finding {
	if opts.Target == nil {
		opts.Target = afero.NewOsFs()
	}
	if opts.Dirs == nil {
		opts.Dirs = DefaultDirs
	}
	if opts.Bundled == nil {
		opts.Bundled, _ = templates.BundledCoreConfig()
	}

	var findings []Finding
	add := func(h Health, subject, format string, args ...any) {
		findings = append(findings, Finding{Health: h, Subject: subject, Message: fmt.Sprintf(format, args...)})
	}

	coreDir := filepath.Join(opts.Dir, CoreDir)
	if ok, _ := afero.DirExists(opts.Target, coreDir); !ok {
		add(HealthMiss, CoreDir, "not found; run 'sparkentic init'")
	} else {
		findings = append(findings, diagnoseCore(opts, coreDir)...)
	}

	for _, dir := range opts.Dirs {
		full := filepath.Join(opts.Dir, filepath.FromSlash(dir))
		if ok, _ := afero.DirExists(opts.Target, full); ok {
			add(HealthOK, dir+"/", "exists")
		} else {
			add(HealthMiss, dir+"/", "not found")
		}
	}

	if ok, _ := afero.Exists(opts.Target, filepath.Join(opts.Dir, ManifestFile)); ok {
		add(HealthOK, ManifestFile, "exists")
	} else {
		add(HealthMiss, ManifestFile, "not found")
	}

	return findings
}

func diagnoseCore(opts DiagnoseOptions, coreDir string) []Finding {
	var findings []Finding
	add := func(h Health, subject, format string, args ...any) {
		findings = append(findings, Finding{Health: h, Subject: subject, Message: fmt.Sprintf(format, args...)})
	}

	subject := CoreDir + "/" + templates.CoreConfigFile
	data, err := afero.ReadFile(opts.Target, filepath.Join(coreDir, templates.CoreConfigFile))
	if err != nil {
		add(HealthFail, subject, "cannot read: %v", err)
		return findings
	}

	result, err := coreconfig.Validate(data)
	if err != nil {
		add(HealthFail, subject, "%v", err)
		return findings
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			add(HealthFail, subject, "%s", issue)
		}
		return findings
	}

	cfg, err := coreconfig.Parse(data)
	if err != nil {
		add(HealthFail, subject, "%v", err)
		return findings
	}
	add(HealthOK, subject, "valid (%s v%s)", cfg.Name, cfg.Version)

	for _, stage := range cfg.UnassignedStages() {
		add(HealthWarn, subject, "workflow stage %q has no agent", stage)
	}

	for _, agent := range cfg.Agents {
		prompt := filepath.Join(coreDir, filepath.FromSlash(agent.Prompt))
		if ok, _ := afero.Exists(opts.Target, prompt); !ok {
			add(HealthWarn, agent.Name, "prompt %s not found", agent.Prompt)
		}
		if agent.Command == "" {
			continue
		}
		command := filepath.Join(opts.Dir, filepath.FromSlash(CommandsDir), agent.Command+".md")
		if ok, _ := afero.Exists(opts.Target, command); !ok {
			add(HealthWarn, agent.Name, "slash command /%s not installed", agent.Command)
		}
	}

	findings = append(findings, compareWithBundled(cfg, opts.Bundled, subject)...)
	return findings
}

func compareWithBundled(cfg *coreconfig.Config, bundledData []byte, subject string) []Finding {
	if len(bundledData) == 0 {
		return nil
	}
	bundled, err := coreconfig.Parse(bundledData)
	if err != nil {
		return []Finding{{Health: HealthWarn, Subject: subject, Message: fmt.Sprintf("cannot read bundled core: %v", err)}}
	}

	cmp, err := coreconfig.CompareVersions(cfg.Version, bundled.Version)
	switch {
	case err != nil:
		return []Finding{{Health: HealthWarn, Subject: subject, Message: err.Error()}}
	case cmp < 0:
		return []Finding{{Health: HealthWarn, Subject: subject,
			Message: fmt.Sprintf("core v%s is older than bundled v%s; run 'sparkentic init' to update", cfg.Version, bundled.Version)}}
	case cmp > 0:
		return []Finding{{Health: HealthWarn, Subject: subject,
			Message: fmt.Sprintf("core v%s is newer than this CLI (v%s); upgrade sparkentic", cfg.Version, bundled.Version)}}
	default:
		return []Finding{{Health: HealthOK, Subject: subject, Message: "core is up to date"}}
	}
}

// Failed reports whether any finding is a failure or a missing piece.
func Failed(findings []Finding) bool {
	for _, f := range findings {
		if f.Health == HealthFail || f.Health == HealthMiss {
			return true
		}
	}
	return false
}
