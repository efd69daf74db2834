package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sparkentic/sparkentic/internal/branding"
	"github.com/sparkentic/sparkentic/internal/config"
	"github.com/sparkentic/sparkentic/internal/materialize"
	"github.com/sparkentic/sparkentic/internal/output"
	"github.com/sparkentic/sparkentic/internal/project"
	"github.com/sparkentic/sparkentic/internal/templates"
)

var (
	initDir       string
	initTemplates string
	initDryRun    bool
	initName      string
	initPython    string
	initAuthor    string
)

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", "", "Project directory (default: current directory)")
	initCmd.Flags().StringVar(&initTemplates, "templates", "", "Template directory to install from (default: built-in templates)")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "Show what would be created without writing anything")
	initCmd.Flags().StringVar(&initName, "name", "", "Package name for pyproject.toml (default: derived from the directory name)")
	initCmd.Flags().StringVar(&initPython, "python", "", "Minimum Python version for pyproject.toml (default: 3.11)")
	initCmd.Flags().StringVar(&initAuthor, "author", "", `Author for pyproject.toml, e.g. "Jane Doe <jane@example.com>"`)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize " + branding.DisplayName() + " in a project",
	Long: `Install the agent workflow templates and the project layout.

The .sparkentic-core/ and .claude/ template sets are installed on every run,
overwriting the files they manage and leaving any other files alone. The docs/,
src/, src/tools/ and tests/ directories and pyproject.toml are only created
when missing.`,
	Example: `  # Initialize the current directory
  ` + branding.CLIName() + ` init

  # Preview without writing
  ` + branding.CLIName() + ` init --dry-run

  # Use a local template checkout
  ` + branding.CLIName() + ` init --templates ~/src/sparkentic-templates`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		dir := initDir
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return output.NewSystemError("resolving current directory", err)
			}
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			return output.NewSystemError("resolving project directory", err)
		}

		templatesDir := initTemplates
		if templatesDir == "" {
			templatesDir = config.Get(config.KeyTemplatesDir)
		}
		src, err := templates.Source(templatesDir)
		if err != nil {
			return output.NewUserError(err.Error())
		}

		manifest := project.NewManifestData(dir)
		if initName != "" {
			manifest.Name = project.PackageName(initName)
		}
		if initPython != "" {
			manifest.PythonVersion = initPython
		}
		if initAuthor != "" {
			manifest.Author = initAuthor
		}

		return initProject(newPrinter(cmd), project.Options{
			Dir:       dir,
			Templates: src,
			Target:    afero.NewOsFs(),
			Manifest:  manifest,
			DryRun:    initDryRun,
			Logger:    logger,
		})
	},
}

// initProject runs project.Init and reports each step. Steps completed
// before a failure are still printed.
func initProject(p *output.Printer, opts project.Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	pal := p.Palette()

	p.Println(pal.Yellow.Render("Initializing " + branding.DisplayName() + "..."))
	p.Println()

	report, err := project.Init(opts)
	if report != nil {
		printInitReport(p, report)
	}
	if err != nil {
		return classifyInitError(err)
	}

	if opts.DryRun {
		p.Println()
		p.Println(pal.Dim.Render("Dry run: nothing was written."))
		return nil
	}
	printNextSteps(p)
	return nil
}

func printInitReport(p *output.Printer, report *project.Report) {
	for _, s := range report.Steps {
		label := stepLabel(s)
		switch s.Status {
		case project.StatusCreated:
			p.Step("Created %s", label)
		case project.StatusPlanned:
			p.Pending("Would create %s", label)
		case project.StatusSkipped:
			p.Warn("%s", s.Detail)
		}
	}
}

func stepLabel(s project.Step) string {
	switch s.Kind {
	case project.KindTemplate:
		switch s.Files {
		case 0:
			return s.Path + "/"
		case 1:
			return s.Path + "/ (1 file)"
		default:
			return fmt.Sprintf("%s/ (%d files)", s.Path, s.Files)
		}
	case project.KindDir:
		return s.Path + "/"
	default:
		return s.Path
	}
}

// classifyInitError maps materialization failures onto exit codes.
func classifyInitError(err error) error {
	if errors.Is(err, materialize.ErrKindConflict) {
		return output.NewConflictError("project layout conflicts with the templates", err)
	}
	var ioErr *materialize.IOError
	if errors.As(err, &ioErr) {
		return output.NewSystemError("installing templates", err)
	}
	return output.NewSystemError("initializing project", err)
}

func printNextSteps(p *output.Printer) {
	pal := p.Palette()
	n := func(i int) string { return pal.Dim.Render(fmt.Sprintf("%d.", i)) }

	p.Println()
	p.Println(pal.Purple.Render(branding.DisplayName() + " initialized!"))
	p.Println()
	p.Println(pal.Bold.Render("Next steps:"))
	p.Printf("%s Install Python dependencies:\n   %s or %s\n\n", n(1),
		pal.Cyan.Render("poetry install"), pal.Cyan.Render("pip install pydantic-ai pytest"))
	p.Printf("%s Run Claude Code in this directory\n\n", n(2))
	p.Printf("%s Use %s to start the orchestrator\n\n", n(3), pal.Cyan.Render("/sparkentic"))
	p.Printf("%s Or use specific agents:\n", n(4))
	p.Printf("   %s  → design agent\n", pal.Purple.Render("/spk-architect"))
	p.Printf("   %s    → implement code\n", pal.Magenta.Render("/spk-builder"))
	p.Printf("   %s     → write tests\n", pal.Pink.Render("/spk-tester"))
	p.Printf("   %s   → deploy to production\n", pal.Cyan.Render("/spk-deployer"))
	p.Println()
	p.Println(pal.Teal.Render("Happy building!"))
}
