package engine

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// CutStatistics collects counts for each pruning/cutoff mechanism.
type CutStatistics struct {
	TTCutoffs         uint64
	NullMoveCutoffs   uint64
	StaticNullCutoffs uint64
	FutilityPrunes    uint64
	BetaCutoffs       uint64
	QStandPatCutoffs  uint64
	QBetaCutoffs      uint64
}

func (c CutStatistics) String() string {
	var sb strings.Builder
	line := func(name string, n uint64) {
		fmt.Fprintf(&sb, "%-20s %s\n", name, humanize.Comma(int64(n)))
	}
	line("TT cutoffs:", c.TTCutoffs)
	line("Null-move cutoffs:", c.NullMoveCutoffs)
	line("Static null cutoffs:", c.StaticNullCutoffs)
	line("Futility prunes:", c.FutilityPrunes)
	line("Beta cutoffs:", c.BetaCutoffs)
	line("QStandPat cutoffs:", c.QStandPatCutoffs)
	line("QBeta cutoffs:", c.QBetaCutoffs)
	return sb.String()
}
