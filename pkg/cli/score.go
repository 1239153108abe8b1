package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/chests-genuine/web3-construct-stability/pkg/catalog"
	"github.com/chests-genuine/web3-construct-stability/pkg/score"
	"github.com/urfave/cli/v2"
)

const (
	constructDefault  = "aztec-zk"
	latencyDefault    = 180.0
	syncDefault       = 950.0
	throughputDefault = 3000
)

var (
	constructFlag = &cli.StringFlag{
		Name:    "construct",
		Aliases: []string{"c"},
		Usage:   fmt.Sprintf("Construct to score [%s]", strings.Join(catalog.Builtin().Keys(), ", ")),
		Value:   constructDefault,
	}

	latencyFlag = &cli.Float64Flag{
		Name:  "latency",
		Usage: "RPC latency in milliseconds (must be > 0)",
		Value: latencyDefault,
	}

	syncFlag = &cli.Float64Flag{
		Name:  "sync",
		Usage: "State sync cycle time in milliseconds (must be > 0)",
		Value: syncDefault,
	}

	throughputFlag = &cli.IntFlag{
		Name:  "throughput",
		Usage: "System throughput load (must be >= 0)",
		Value: throughputDefault,
	}

	commitmentsFlag = &cli.BoolFlag{
		Name:  "commitments",
		Usage: "Enable commitment schemes",
	}

	proofsFlag = &cli.BoolFlag{
		Name:  "proofs",
		Usage: "Enable zk-proof verification",
	}

	fheFlag = &cli.BoolFlag{
		Name:  "fhe",
		Usage: "Enable FHE layers",
	}

	scoreCmd = &cli.Command{
		Name:    "score",
		Aliases: []string{"s"},
		Usage:   "Compute the stability score for a construct",
		UsageText: `w3score score --construct aztec-zk --latency 180 --sync 950 --throughput 3000
   w3score --format json score -c zama-fhe --fhe    # structured output, FHE enabled`,
		HideHelpCommand: true,
		Action:          cmdScore,
		Flags: []cli.Flag{
			constructFlag,
			latencyFlag,
			syncFlag,
			throughputFlag,
			commitmentsFlag,
			proofsFlag,
			fheFlag,
		},
	}
)

func cmdScore(c *cli.Context) error {
	params := score.Params{
		LatencyMS:   c.Float64(latencyFlag.Name),
		SyncMS:      c.Float64(syncFlag.Name),
		Throughput:  c.Int(throughputFlag.Name),
		Commitments: c.Bool(commitmentsFlag.Name),
		Proofs:      c.Bool(proofsFlag.Name),
		FHE:         c.Bool(fheFlag.Name),
	}

	if err := validateParams(params); err != nil {
		return err
	}

	cfg := getConfig(c)

	construct, err := cfg.Catalog.Get(c.String(constructFlag.Name))
	if err != nil {
		return err
	}

	slog.Debug("scoring construct",
		"construct", construct.Key,
		"latency", params.LatencyMS,
		"sync", params.SyncMS,
		"throughput", params.Throughput,
	)

	res := score.Compute(construct, params)
	rep := newReport(construct, params, res)

	if outputFormat == formatReport {
		return writeReport(c.App.Writer, rep)
	}
	if err := encode(rep); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}

// validateParams rejects parameter values outside the domain the
// scorer is defined over, before the scorer is ever called.
func validateParams(p score.Params) error {
	if p.LatencyMS <= 0 {
		return fmt.Errorf("latency must be greater than zero, got %v", p.LatencyMS)
	}
	if p.SyncMS <= 0 {
		return fmt.Errorf("sync time must be greater than zero, got %v", p.SyncMS)
	}
	if p.Throughput < 0 {
		return fmt.Errorf("throughput must not be negative, got %d", p.Throughput)
	}
	return nil
}
