package cli

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sparkentic/sparkentic/internal/branding"
	"github.com/sparkentic/sparkentic/internal/output"
	"github.com/sparkentic/sparkentic/internal/project"
)

var (
	doctorDir         string
	doctorSkipRuntime bool
)

var (
	runtimeBinaries = []string{"python3", "poetry", "claude"}
	lookPath        = exec.LookPath
)

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "Project directory (default: current directory)")
	doctorCmd.Flags().BoolVar(&doctorSkipRuntime, "skip-runtime", false, "Do not look for python3, poetry and claude on PATH")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a project is set up correctly",
	Long: `Run diagnostic checks on an initialized project.

Validates .sparkentic-core/sparkentic.yaml, checks that every agent has its
prompt and slash command, compares the installed core with the one bundled in
this binary, and looks for the conventional directories and pyproject.toml.
Exits non-zero when something is missing or invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := doctorDir
		if dir == "" {
			var err error
			if dir, err = os.Getwd(); err != nil {
				return output.NewSystemError("resolving current directory", err)
			}
		}
		dir, err := filepath.Abs(dir)
		if err != nil {
			return output.NewSystemError("resolving project directory", err)
		}

		p := newPrinter(cmd)
		if !doctorSkipRuntime {
			runRuntimeCheck(p)
			p.Println()
		}
		return runProjectCheck(p, afero.NewOsFs(), dir)
	},
}

func runProjectCheck(p *output.Printer, fsys afero.Fs, dir string) error {
	p.Heading("Project check: " + dir)
	findings := project.Diagnose(project.DiagnoseOptions{Dir: dir, Target: fsys})
	for _, f := range findings {
		p.Status(string(f.Health), f.Subject, f.Message)
	}
	if project.Failed(findings) {
		return output.NewUserError("project is not fully set up; run '" + branding.CLIName() + " init'")
	}
	return nil
}

// runRuntimeCheck reports the tools a project needs. Missing tools are
// warnings since the project files can be set up without them.
func runRuntimeCheck(p *output.Printer) {
	p.Heading("Runtime check:")
	for _, name := range runtimeBinaries {
		path, err := lookPath(name)
		if err != nil {
			p.Status("warn", name, "not found on PATH")
			continue
		}
		p.Status("ok", name, "found at "+path)
	}
}
