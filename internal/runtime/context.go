package runtime

import (
	"fmt"

	"gitpro.dev/gitpro/internal/config"
	"gitpro.dev/gitpro/internal/git"
	"gitpro.dev/gitpro/internal/tui"
)

// Context provides access to the repository and output for commands
type Context struct {
	Repo      *git.Repository
	Splog     *tui.Splog
	Config    *config.Config
	Confirmer tui.Confirmer
}

// Options controls how GetContext builds a Context
type Options struct {
	// Cwd is the directory to look for the repository from; "" means the process directory
	Cwd     string
	Debug   bool
	NoColor bool
}

// NewContext creates a context around an already opened repository
func NewContext(repo *git.Repository, splog *tui.Splog, cfg *config.Config, confirmer tui.Confirmer) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Repo:      repo,
		Splog:     splog,
		Config:    cfg,
		Confirmer: confirmer,
	}
}

// GetContext opens the repository, loads settings and sets up logging for a command
func GetContext(opts Options) (*Context, error) {
	cwd := opts.Cwd
	if cwd == "" {
		cwd = "."
	}

	repo, err := git.OpenRepository(cwd)
	if err != nil {
		return nil, err
	}

	gitDir, err := repo.GitDir()
	if err != nil {
		return nil, err
	}
	userPath, err := config.UserConfigPath()
	if err != nil {
		// No user config dir; the repository file still applies
		userPath = ""
	}
	cfg, err := config.Load(userPath, gitDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	tui.SetColorEnabled(colorEnabled(cfg.Color, opts.NoColor))

	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{
		Debug:   opts.Debug,
		LogFile: tui.GetLogFilePath(cfg.Log.File),
	})
	if err != nil {
		return nil, err
	}
	splog.Debug("repository root: %s", repo.GetRepoRoot())

	return NewContext(repo, splog, cfg, tui.NewSurveyConfirmer()), nil
}

// Close releases the log file
func (c *Context) Close() error {
	if c.Splog == nil {
		return nil
	}
	return c.Splog.Close()
}

func colorEnabled(mode config.ColorMode, noColor bool) bool {
	if noColor {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tui.IsOutputTTY()
	}
}
