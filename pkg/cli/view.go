package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/chests-genuine/web3-construct-stability/pkg/catalog"
	"github.com/chests-genuine/web3-construct-stability/pkg/score"
)

// Report is the externally visible scoring record. Field names and
// the 4-decimal rounding of the two scores are part of the output
// contract; downstream consumers parse them.
type Report struct {
	Construct           string  `json:"construct" yaml:"construct"`
	Name                string  `json:"name" yaml:"name"`
	Category            string  `json:"category" yaml:"category"`
	Description         string  `json:"description" yaml:"description"`
	LatencyMS           float64 `json:"latencyMs" yaml:"latencyMs"`
	SyncMS              float64 `json:"syncMs" yaml:"syncMs"`
	Throughput          int     `json:"throughput" yaml:"throughput"`
	EnableCommitments   bool    `json:"enableCommitments" yaml:"enableCommitments"`
	EnableProofs        bool    `json:"enableProofs" yaml:"enableProofs"`
	EnableFhe           bool    `json:"enableFhe" yaml:"enableFhe"`
	StabilityMultiplier float64 `json:"stabilityMultiplier" yaml:"stabilityMultiplier"`
	FinalScore          float64 `json:"finalScore" yaml:"finalScore"`
}

func newReport(c catalog.Construct, p score.Params, r score.Result) *Report {
	return &Report{
		Construct:           c.Key,
		Name:                c.Name,
		Category:            c.Category,
		Description:         c.Description,
		LatencyMS:           p.LatencyMS,
		SyncMS:              p.SyncMS,
		Throughput:          p.Throughput,
		EnableCommitments:   p.Commitments,
		EnableProofs:        p.Proofs,
		EnableFhe:           p.FHE,
		StabilityMultiplier: round4(r.StabilityMultiplier),
		FinalScore:          round4(r.FinalScore),
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// writeReport renders the human-readable multi-line report.
func writeReport(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, `Web3 Construct Stability Model
Construct     : %s (%s)
Category      : %s
Description   : %s

Parameters:
  Latency (ms)     : %v
  Sync time (ms)   : %v
  Throughput load  : %d
  Commitments      : %t
  Proofs enabled   : %t
  FHE enabled      : %t

Stability Multiplier : %.4f
Final Score          : %.4f
`,
		r.Name, r.Construct,
		r.Category,
		r.Description,
		r.LatencyMS,
		r.SyncMS,
		r.Throughput,
		r.EnableCommitments,
		r.EnableProofs,
		r.EnableFhe,
		r.StabilityMultiplier,
		r.FinalScore,
	)
	return err
}

// writeConstructDetail renders a single catalog entry as text.
func writeConstructDetail(w io.Writer, c catalog.Construct) error {
	_, err := fmt.Fprintf(w, `Construct     : %s (%s)
Category      : %s
Description   : %s
Security      : %.2f
Privacy       : %.2f
Scalability   : %.2f
`,
		c.Name, c.Key,
		c.Category,
		c.Description,
		c.BaselineSecurity,
		c.PrivacyFactor,
		c.ScalabilityFactor,
	)
	return err
}

// writeConstructList renders one line per catalog entry.
func writeConstructList(w io.Writer, list []catalog.Construct) error {
	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%-15s %s (%s)\n", c.Key, c.Name, c.Category); err != nil {
			return err
		}
	}
	return nil
}
