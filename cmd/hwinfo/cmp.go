package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

func newCmpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp [predicate]...",
		Short: "List the xarch floating point comparison predicates",
		Long: `List the predicate immediates of cmpps, cmppd, cmpss and cmpsd with the
predicate to use once the operands are swapped. Predicates are given as
_CMP_LT_OS, LT_OS or a number from 0 to 31; without arguments all 32 are
listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes, err := parseComparisonModes(args)
			if err != nil {
				return err
			}
			return a.renderComparisons(cmd.OutOrStdout(), modes)
		},
	}
}

func parseComparisonModes(args []string) ([]xarch.FloatComparisonMode, error) {
	var modes []xarch.FloatComparisonMode
	if len(args) == 0 {
		for m := xarch.FloatComparisonMode(0); m < xarch.NumComparisonModes; m++ {
			modes = append(modes, m)
		}
		return modes, nil
	}
	for _, arg := range args {
		if n, err := strconv.ParseUint(arg, 0, 8); err == nil && xarch.FloatComparisonMode(n).Valid() {
			modes = append(modes, xarch.FloatComparisonMode(n))
			continue
		}
		m, ok := xarch.ParseComparisonMode(arg)
		if !ok {
			return nil, fmt.Errorf("unknown comparison predicate %q", arg)
		}
		modes = append(modes, m)
	}
	return modes, nil
}

type comparisonRecord struct {
	Code      uint8  `json:"code" yaml:"code"`
	Name      string `json:"name" yaml:"name"`
	Swapped   string `json:"swapped" yaml:"swapped"`
	NaNResult bool   `json:"nan_result" yaml:"nan_result"`
	Signaling bool   `json:"signaling" yaml:"signaling"`
}

func (a *app) renderComparisons(w io.Writer, modes []xarch.FloatComparisonMode) error {
	recs := make([]comparisonRecord, 0, len(modes))
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		rec := comparisonRecord{
			Code:      uint8(m),
			Name:      m.String(),
			Swapped:   xarch.SwappedComparison(m).String(),
			NaNResult: m.NaNResult(),
			Signaling: m.Signaling(),
		}
		recs = append(recs, rec)
		rows = append(rows, []string{
			fmt.Sprintf("0x%02x", rec.Code),
			rec.Name,
			rec.Swapped,
			strconv.FormatBool(rec.NaNResult),
			strconv.FormatBool(rec.Signaling),
		})
	}
	return a.render(w, recs, []string{"Code", "Predicate", "Swapped", "NaN", "Signaling"}, rows)
}
