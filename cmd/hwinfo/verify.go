package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/target"
	"github.com/ajroetker/go-hwintrinsic/hwi/xarch"
)

func newVerifyCommand(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the intrinsic tables",
		Long: `Check the properties code generators rely on: every record resolves back
to itself through its class, immediates stay within imm8, memory intrinsics
are never contained and swapping a comparison twice is the identity.

The tables are already validated when they are built; verify checks what
spans the resolver and the family specific rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			families := []hwi.Target{a.target}
			if all {
				families = target.Families()
			}
			return a.verify(cmd.OutOrStdout(), families)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "verify every family instead of the selected one")
	return cmd
}

type verifyReport struct {
	Arch        string   `json:"arch" yaml:"arch"`
	Intrinsics  int      `json:"intrinsics" yaml:"intrinsics"`
	ISAs        int      `json:"isas" yaml:"isas"`
	Fingerprint string   `json:"fingerprint" yaml:"fingerprint"`
	Problems    []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

func (a *app) verify(w io.Writer, families []hwi.Target) error {
	reports := make([]verifyReport, len(families))
	var g errgroup.Group
	for i, t := range families {
		g.Go(func() (err error) {
			defer hwi.Recover(&err)
			reports[i] = verifyFamily(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.Arch, strconv.Itoa(r.Intrinsics), strconv.Itoa(r.ISAs), r.Fingerprint, strconv.Itoa(len(r.Problems))})
		for _, p := range r.Problems {
			a.log.WithField("arch", r.Arch).Error(p)
			errs = append(errs, fmt.Errorf("%s: %s", r.Arch, p))
		}
	}
	if err := a.render(w, reports, []string{"Arch", "Intrinsics", "ISAs", "Fingerprint", "Problems"}, rows); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func verifyFamily(t hwi.Target) verifyReport {
	reg := t.Registry()
	r := verifyReport{
		Arch:        t.Arch().String(),
		Intrinsics:  reg.Len(),
		ISAs:        len(reg.ISAs()),
		Fingerprint: fmt.Sprintf("%016x", reg.Fingerprint()),
	}
	problemf := func(format string, args ...any) {
		r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
	}

	ctx := target.AllSupported(t)
	for in := range reg.All() {
		ref := reg.ISAName(in.ISA) + "." + in.Name

		class, enclosing, ok := t.ClassNames(in.ISA)
		if !ok {
			problemf("%s: ISA has no class", ref)
		} else if id := t.ResolveID(ctx, class, in.Name, enclosing); id != in.ID {
			problemf("%s: resolves to %d, want %d", ref, id, in.ID)
		}

		switch in.Category {
		case hwi.CategoryIMM:
			bound := t.ImmUpperBound(in.ID)
			if bound < 0 || bound > 255 {
				problemf("%s: immediate upper bound %d outside imm8", ref, bound)
			}
			if in.HasFullRangeImm() && bound != 255 {
				problemf("%s: full range immediate bounded by %d", ref, bound)
			}
		case hwi.CategoryMemoryLoad, hwi.CategoryMemoryStore:
			if in.SupportsContainment() {
				problemf("%s: memory intrinsic supports containment", ref)
			}
		}
	}

	if t.Arch() == hwi.ArchXArch {
		for m := xarch.FloatComparisonMode(0); m < xarch.NumComparisonModes; m++ {
			if got := xarch.SwappedComparison(xarch.SwappedComparison(m)); got != m {
				problemf("swapping %s twice gives %s", m, got)
			}
		}
	}
	return r
}
