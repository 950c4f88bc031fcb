package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ISA.Name | id>...",
		Short: "Show every field of intrinsics",
		Long: `Show the full record of each intrinsic, including the instruction chosen
for every element type and the legal immediates of IMM intrinsics.

Intrinsics are named ISA.Name, with the ISA as printed by list (SSE2.Add,
AdvSimd_Arm64.Abs), or by numeric ID.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]hwi.Info, 0, len(args))
			for _, arg := range args {
				id, err := a.findIntrinsic(arg)
				if err != nil {
					return err
				}
				infos = append(infos, a.target.Registry().Lookup(id))
			}
			return a.renderDetails(cmd.OutOrStdout(), infos)
		},
	}
}

// findIntrinsic accepts ISA.Name or a decimal ID.
func (a *app) findIntrinsic(ref string) (hwi.ID, error) {
	reg := a.target.Registry()
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 || n > int(^hwi.ID(0)) || !reg.Valid(hwi.ID(n)) {
			return hwi.IllegalID, fmt.Errorf("%s has no intrinsic %d", a.target.Arch(), n)
		}
		return hwi.ID(n), nil
	}
	isaName, name, ok := strings.Cut(ref, ".")
	if ok {
		if id := reg.FindByName(reg.ParseISA(isaName), name); id != hwi.IllegalID {
			return id, nil
		}
	}
	return hwi.IllegalID, fmt.Errorf("%s has no intrinsic %q%s", a.target.Arch(), ref, didYouMean(ref, qualifiedNames(reg)))
}

// immRange describes the immediates id accepts.
func immRange(t hwi.Target, id hwi.ID) string {
	if t.Registry().LookupCategory(id) != hwi.CategoryIMM {
		return ""
	}
	var legal []string
	upper := t.ImmUpperBound(id)
	for ival := 0; ival <= upper; ival++ {
		if t.IsLegalImm(id, ival) {
			legal = append(legal, strconv.Itoa(ival))
		}
	}
	if len(legal) > 4 {
		return legal[0] + ".." + legal[len(legal)-1]
	}
	return strings.Join(legal, ",")
}

type intrinsicDetails struct {
	intrinsicRecord `yaml:",inline"`
	Imm             string `json:"imm,omitempty" yaml:"imm,omitempty"`
}

func (a *app) renderDetails(w io.Writer, infos []hwi.Info) error {
	details := make([]intrinsicDetails, 0, len(infos))
	var rows [][]string
	for _, in := range infos {
		d := intrinsicDetails{
			intrinsicRecord: newIntrinsicRecord(a.target, in),
			Imm:             immRange(a.target, in.ID),
		}
		details = append(details, d)

		ref := d.ISA + "." + d.Name
		rows = append(rows,
			[]string{ref, "id", strconv.Itoa(int(d.ID))},
			[]string{ref, "ival", strconv.Itoa(d.Ival)},
			[]string{ref, "simd size", strconv.Itoa(d.SimdSize)},
			[]string{ref, "args", numArgsString(d.NumArgs)},
			[]string{ref, "category", d.Category},
			[]string{ref, "flags", strings.Join(d.Flags, "|")},
			[]string{ref, "rmw", strconv.FormatBool(d.RMW)},
		)
		if d.Imm != "" {
			rows = append(rows, []string{ref, "imm", d.Imm})
		}
		for _, typ := range hwi.ElementTypes() {
			if ins, ok := d.Ins[typ.String()]; ok {
				rows = append(rows, []string{ref, "ins " + typ.String(), ins})
			}
		}
	}
	return a.render(w, details, []string{"Intrinsic", "Field", "Value"}, rows)
}
