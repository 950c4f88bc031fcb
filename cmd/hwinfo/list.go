package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/gobwas/glob"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

type listOptions struct {
	isa      string
	name     string
	category string
	flags    []string
	count    bool
}

func newListCommand(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the intrinsics of a family",
		Long: `List the intrinsics of the selected family, optionally filtered by ISA,
name pattern, category or flags. With --count only the number of intrinsics
per ISA is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := a.filter(opts)
			if err != nil {
				return err
			}
			a.log.WithField("matches", len(infos)).Debug("Filtered intrinsics.")
			if opts.count {
				return a.renderCounts(cmd.OutOrStdout(), infos)
			}
			return a.renderInfos(cmd.OutOrStdout(), infos)
		},
	}
	cmd.Flags().StringVar(&opts.isa, "isa", "", "only intrinsics of this ISA, e.g. SSE2 or AdvSimd_Arm64")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "glob over intrinsic names, e.g. 'Compare*'")
	cmd.Flags().StringVar(&opts.category, "category", "", "only intrinsics of this category, e.g. IMM")
	cmd.Flags().StringSliceVar(&opts.flags, "flag", nil, "only intrinsics carrying every given flag")
	cmd.Flags().BoolVar(&opts.count, "count", false, "print the number of intrinsics per ISA")
	return cmd
}

// filter returns the intrinsics of the selected family matching opts, in ID
// order.
func (a *app) filter(opts listOptions) ([]hwi.Info, error) {
	reg := a.target.Registry()
	infos := slices.Collect(reg.All())

	if opts.isa != "" {
		isa := reg.ParseISA(opts.isa)
		if isa == hwi.ISAIllegal {
			return nil, fmt.Errorf("%s has no ISA %q%s", a.target.Arch(), opts.isa, didYouMean(opts.isa, isaNames(reg)))
		}
		infos = lo.Filter(infos, func(in hwi.Info, _ int) bool { return in.ISA == isa })
	}
	if opts.name != "" {
		g, err := glob.Compile(opts.name)
		if err != nil {
			return nil, fmt.Errorf("name pattern %q: %w", opts.name, err)
		}
		infos = lo.Filter(infos, func(in hwi.Info, _ int) bool { return g.Match(in.Name) })
	}
	if opts.category != "" {
		c, ok := hwi.ParseCategory(opts.category)
		if !ok {
			names := lo.Map(hwi.Categories(), func(c hwi.Category, _ int) string { return c.String() })
			return nil, fmt.Errorf("unknown category %q%s", opts.category, didYouMean(opts.category, slices.Values(names)))
		}
		infos = lo.Filter(infos, func(in hwi.Info, _ int) bool { return in.Category == c })
	}
	if len(opts.flags) > 0 {
		var mask hwi.Flag
		for _, name := range opts.flags {
			f, err := parseFlag(a.target.Arch(), name)
			if err != nil {
				return nil, err
			}
			mask |= f
		}
		infos = lo.Filter(infos, func(in hwi.Info, _ int) bool { return in.Flags.Has(mask) })
	}
	return infos, nil
}

type isaCount struct {
	ISA        string `json:"isa" yaml:"isa"`
	Intrinsics int    `json:"intrinsics" yaml:"intrinsics"`
}

func (a *app) renderCounts(w io.Writer, infos []hwi.Info) error {
	reg := a.target.Registry()
	groups := lo.GroupBy(infos, func(in hwi.Info) hwi.ISA { return in.ISA })
	isas := lo.Keys(groups)
	slices.Sort(isas)

	counts := make([]isaCount, 0, len(isas))
	rows := make([][]string, 0, len(isas))
	for _, isa := range isas {
		n := len(groups[isa])
		counts = append(counts, isaCount{ISA: reg.ISAName(isa), Intrinsics: n})
		rows = append(rows, []string{reg.ISAName(isa), strconv.Itoa(n)})
	}
	return a.render(w, counts, []string{"ISA", "Intrinsics"}, rows)
}
