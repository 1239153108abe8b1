package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chests-genuine/web3-construct-stability/pkg/catalog"
	"github.com/chests-genuine/web3-construct-stability/pkg/logging"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appConfigKey = "app-config"

	formatReport = "report"
	formatJSON   = "json"
	formatYAML   = "yaml"

	userCatalogDir  = ".w3score"
	userCatalogFile = "constructs.yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatReport

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [report, json, yaml]",
		Value: formatReport,
	}

	catalogFileFlag = &urfave.StringFlag{
		Name:  "catalog",
		Usage: "Path to a YAML file with user-defined constructs (optional, defaults to $HOME/.w3score/constructs.yaml when present)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Catalog *catalog.Catalog
	Debug   bool
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 "w3score",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for scoring the stability of Web3 privacy constructs",
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
			catalogFileFlag,
		},
		Commands: []*urfave.Command{
			scoreCmd,
			constructsCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			switch f := c.String(formatFlag.Name); f {
			case formatJSON:
				outputFormat = formatJSON
			case formatYAML, "yml":
				outputFormat = formatYAML
			case formatReport, "":
				outputFormat = formatReport
			default:
				return fmt.Errorf("unknown output format: %q", f)
			}

			cat, err := resolveCatalog(c.String(catalogFileFlag.Name))
			if err != nil {
				return fmt.Errorf("loading construct catalog: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Catalog: cat,
				Debug:   c.Bool(debugFlag.Name),
			}
			return nil
		},
	}
}

// resolveCatalog returns the built-in catalog merged with user
// constructs. An explicit path must exist; the default home location
// is only picked up when the file is there.
func resolveCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using built-in catalog only", "error", err)
		return catalog.Builtin(), nil
	}

	p := filepath.Join(home, userCatalogDir, userCatalogFile)
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		return catalog.Builtin(), nil
	}

	slog.Debug("loading user constructs", "path", p)
	return catalog.LoadFile(p)
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
