package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-hwintrinsic/hwi"
	"github.com/ajroetker/go-hwintrinsic/hwi/target"
)

// rmwFlagNames names the read/modify/write bit the way each family reads it.
var rmwFlagNames = map[hwi.Arch]string{
	hwi.ArchXArch: "NoRMWSemantics",
	hwi.ArchArm64: "HasRMWSemantics",
}

// intrinsicRecord is the printable form of an hwi.Info.
type intrinsicRecord struct {
	ID       hwi.ID            `json:"id" yaml:"id"`
	ISA      string            `json:"isa" yaml:"isa"`
	Name     string            `json:"name" yaml:"name"`
	Ival     int               `json:"ival" yaml:"ival"`
	SimdSize int               `json:"simd_size" yaml:"simd_size"`
	NumArgs  int               `json:"num_args" yaml:"num_args"`
	Category string            `json:"category" yaml:"category"`
	Flags    []string          `json:"flags,omitempty" yaml:"flags,omitempty"`
	RMW      bool              `json:"rmw" yaml:"rmw"`
	Ins      map[string]string `json:"ins,omitempty" yaml:"ins,omitempty"`
}

func newIntrinsicRecord(t hwi.Target, in hwi.Info) intrinsicRecord {
	reg := t.Registry()
	rec := intrinsicRecord{
		ID:       in.ID,
		ISA:      reg.ISAName(in.ISA),
		Name:     in.Name,
		Ival:     in.Ival,
		SimdSize: in.SimdSize,
		NumArgs:  in.NumArgs,
		Category: in.Category.String(),
		Flags:    in.Flags.Names(rmwFlagNames[t.Arch()]),
		RMW:      t.HasRMWSemantics(in.ID),
	}
	for _, typ := range hwi.ElementTypes() {
		if ins := in.InsFor(typ); ins != hwi.InsInvalid {
			if rec.Ins == nil {
				rec.Ins = make(map[string]string)
			}
			rec.Ins[typ.String()] = reg.InsName(ins)
		}
	}
	return rec
}

// parseFlag maps a flag name, as printed for the family, to its bit.
func parseFlag(arch hwi.Arch, name string) (hwi.Flag, error) {
	for bit := hwi.Flag(1); bit <= hwi.FlagMaybeMemoryStore; bit <<= 1 {
		names := bit.Names(rmwFlagNames[arch])
		if len(names) == 1 && strings.EqualFold(names[0], name) {
			return bit, nil
		}
	}
	return hwi.FlagNone, fmt.Errorf("unknown flag %q", name)
}

func numArgsString(n int) string {
	if n < 0 {
		return "var"
	}
	return strconv.Itoa(n)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	aligns := make([]int, len(header))
	for i := range aligns {
		aligns[i] = tablewriter.ALIGN_LEFT
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment(aligns)
	table.SetAutoWrapText(false)
	table.SetRowLine(false)
	return table
}

// render writes v as JSON or YAML, or the rows as a table, following the
// configured format.
func (a *app) render(w io.Writer, v any, header []string, rows [][]string) error {
	switch a.cfg.Format {
	case target.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case target.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		table := newTable(w, header...)
		table.AppendBulk(rows)
		table.Render()
		return nil
	}
}

func (a *app) renderInfos(w io.Writer, infos []hwi.Info) error {
	reg := a.target.Registry()
	recs := make([]intrinsicRecord, 0, len(infos))
	rows := make([][]string, 0, len(infos))
	for _, in := range infos {
		recs = append(recs, newIntrinsicRecord(a.target, in))
		rows = append(rows, []string{
			strconv.Itoa(int(in.ID)),
			reg.ISAName(in.ISA),
			in.Name,
			in.Category.String(),
			strconv.Itoa(in.SimdSize),
			numArgsString(in.NumArgs),
			strings.Join(in.Flags.Names(rmwFlagNames[a.target.Arch()]), "|"),
		})
	}
	return a.render(w, recs, []string{"ID", "ISA", "Name", "Category", "Size", "Args", "Flags"}, rows)
}
