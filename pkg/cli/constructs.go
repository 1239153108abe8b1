package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var (
	constructNameFlag = &cli.StringFlag{
		Name:     "name",
		Usage:    "Construct key",
		Required: true,
	}

	constructsCmd = &cli.Command{
		Name:    "constructs",
		Aliases: []string{"cat"},
		Usage:   "List construct catalog operations",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "List all known constructs (built-in plus user-defined)",
				Aliases: []string{"l"},
				Action:  cmdConstructList,
			},
			{
				Name:    "detail",
				Usage:   "Get a specific construct and its quality factors",
				Aliases: []string{"d"},
				Action:  cmdConstructDetail,
				Flags: []cli.Flag{
					constructNameFlag,
				},
			},
		},
	}
)

func cmdConstructList(c *cli.Context) error {
	cfg := getConfig(c)

	list := cfg.Catalog.List()
	if outputFormat == formatReport {
		return writeConstructList(c.App.Writer, list)
	}
	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding list: %w", err)
	}
	return nil
}

func cmdConstructDetail(c *cli.Context) error {
	val := c.String(constructNameFlag.Name)
	if val == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	construct, err := cfg.Catalog.Get(val)
	if err != nil {
		return err
	}

	if outputFormat == formatReport {
		return writeConstructDetail(c.App.Writer, construct)
	}
	if err := encode(construct); err != nil {
		return fmt.Errorf("error encoding construct: %w", err)
	}
	return nil
}
