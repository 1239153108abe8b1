// Package score computes the synthetic stability score for a Web3
// construct. The computation is pure and total: a fixed number of
// arithmetic operations, no state, no error paths for any numerically
// valid input. Callers validate that latency and sync time are
// strictly positive and throughput is non-negative before calling.
package score

import (
	"math"

	"github.com/chests-genuine/web3-construct-stability/pkg/catalog"
)

// Stability curve constants. Latency and sync terms decay
// exponentially with the respective time, the throughput term
// saturates toward 1 as load grows.
const (
	latencyDecayMS       = 1000.0
	syncDecayMS          = 650.0
	throughputSaturation = 900.0
)

// Baseline weights over the construct quality factors. Sum to 1.
const (
	securityWeight    = 0.41
	privacyWeight     = 0.25
	scalabilityWeight = 0.34
)

// Additive bonuses for enabled capabilities. Proofs and FHE carry
// stronger guarantees than plain commitments, hence the larger
// increments. Even combined they cannot lift a zero baseline to 1.
const (
	commitmentsBonus = 0.04
	proofsBonus      = 0.07
	fheBonus         = 0.05
)

// Params holds the per-invocation operational parameters.
// LatencyMS and SyncMS must be > 0, Throughput >= 0.
type Params struct {
	LatencyMS   float64
	SyncMS      float64
	Throughput  int
	Commitments bool
	Proofs      bool
	FHE         bool
}

// Result is the scoring output. StabilityMultiplier is in (0, 1],
// FinalScore is clamped to [0, 1].
type Result struct {
	StabilityMultiplier float64
	FinalScore          float64
}

// Stability returns the stability multiplier for the given
// operational parameters: the equal-weight mean of the latency, sync,
// and throughput terms. Extreme latency or sync times drive the
// result asymptotically toward 0, never below it. Zero throughput
// yields a zero throughput term, not a division fault.
func Stability(latencyMS, syncMS float64, throughput int) float64 {
	latencyTerm := math.Exp(-latencyMS / latencyDecayMS)
	syncTerm := math.Exp(-syncMS / syncDecayMS)

	load := float64(throughput)
	throughputTerm := load / (load + throughputSaturation)

	return clamp((latencyTerm + syncTerm + throughputTerm) / 3)
}

// Compute scores a construct under the given parameters. The weighted
// baseline and capability bonuses are folded first, then scaled by
// the stability multiplier and clamped.
func Compute(c catalog.Construct, p Params) Result {
	base := c.BaselineSecurity*securityWeight +
		c.PrivacyFactor*privacyWeight +
		c.ScalabilityFactor*scalabilityWeight

	if p.Commitments {
		base += commitmentsBonus
	}
	if p.Proofs {
		base += proofsBonus
	}
	if p.FHE {
		base += fheBonus
	}

	stability := Stability(p.LatencyMS, p.SyncMS, p.Throughput)

	return Result{
		StabilityMultiplier: stability,
		FinalScore:          clamp(base * stability),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
