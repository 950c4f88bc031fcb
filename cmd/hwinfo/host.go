package main

import (
	"io"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi/target"
)

func newHostCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Show the ISAs of the running CPU",
		Long: `Show the ISAs the running CPU supports, in the numbering of the family
this binary was built for, and which of them generated code may assume.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.renderHost(cmd.OutOrStdout(), target.DetectHost())
		},
	}
}

type hostISA struct {
	ISA         string `json:"isa" yaml:"isa"`
	Class       string `json:"class" yaml:"class"`
	Exact       bool   `json:"exact" yaml:"exact"`
	Implemented bool   `json:"implemented" yaml:"implemented"`
}

type hostReport struct {
	GOARCH       string    `json:"goarch" yaml:"goarch"`
	Arch         string    `json:"arch" yaml:"arch"`
	BaselineSIMD bool      `json:"baseline_simd" yaml:"baseline_simd"`
	ISAs         []hostISA `json:"isas" yaml:"isas"`
}

func (a *app) renderHost(w io.Writer, s *target.Support) error {
	t := target.Native()
	reg := t.Registry()
	report := hostReport{
		GOARCH:       runtime.GOARCH,
		Arch:         s.Arch().String(),
		BaselineSIMD: s.BaselineSIMDSupported(),
	}
	rows := make([][]string, 0, len(s.ISAs()))
	for _, isa := range s.ISAs() {
		class, enclosing, _ := t.ClassNames(isa)
		if enclosing != "" {
			class = enclosing + "." + class
		}
		h := hostISA{
			ISA:         reg.ISAName(isa),
			Class:       class,
			Exact:       s.ExactlyDependsOn(isa),
			Implemented: t.IsFullyImplementedISA(isa),
		}
		report.ISAs = append(report.ISAs, h)
		rows = append(rows, []string{h.ISA, h.Class, strconv.FormatBool(h.Exact), strconv.FormatBool(h.Implemented)})
	}
	if len(rows) == 0 {
		a.log.WithField("goarch", runtime.GOARCH).Warn("No ISA detected on this host.")
	}
	return a.render(w, report, []string{"ISA", "Class", "Exact", "Implemented"}, rows)
}
