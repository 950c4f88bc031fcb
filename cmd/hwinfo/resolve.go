package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <Class.Method | Enclosing.Class.Method>...",
		Short: "Resolve method references the way an importer does",
		Long: `Resolve each reference to an intrinsic ID against the ISAs the
configuration allows, e.g. Sse2.Add, Sse2.X64.ConvertToInt64 or
AdvSimd.Arm64.Abs. IsSupported resolves to one of the IsSupported results.

A reference that is not an intrinsic is reported together with the closest
known names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]resolution, 0, len(args))
			for _, arg := range args {
				r, err := a.resolve(arg)
				if err != nil {
					return err
				}
				results = append(results, r)
			}
			return a.renderResolutions(cmd.OutOrStdout(), results)
		},
	}
}

type resolution struct {
	Reference   string   `json:"reference" yaml:"reference"`
	ISA         string   `json:"isa" yaml:"isa"`
	ID          hwi.ID   `json:"id" yaml:"id"`
	Result      string   `json:"result" yaml:"result"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// splitReference splits Class.Method or Enclosing.Class.Method.
func splitReference(ref string) (class, method, enclosing string, err error) {
	parts := strings.Split(ref, ".")
	switch len(parts) {
	case 2:
		class, method = parts[0], parts[1]
	case 3:
		enclosing, class, method = parts[0], parts[1], parts[2]
	default:
		return "", "", "", fmt.Errorf("reference %q is not Class.Method or Enclosing.Class.Method", ref)
	}
	if method == "IsSupported" {
		method = hwi.IsSupportedMethod
	}
	return class, method, enclosing, nil
}

func (a *app) resolve(ref string) (resolution, error) {
	class, method, enclosing, err := splitReference(ref)
	if err != nil {
		return resolution{}, err
	}
	isa := a.target.ResolveISA(class, enclosing)
	id := a.target.ResolveID(a.support, class, method, enclosing)
	r := resolution{
		Reference: ref,
		ISA:       a.target.Registry().ISAName(isa),
		ID:        id,
		Result:    describeID(a.target.Registry(), id),
	}

	if id == hwi.IllegalID {
		classRef := class
		if enclosing != "" {
			classRef = enclosing + "." + class
		}
		if isa == hwi.ISAIllegal {
			r.Suggestions = closestStrings(maxSuggestionDistance+1, classRef, classNames(a.target))
		} else {
			r.Suggestions = closestStrings(maxSuggestionDistance+1, method, memberNames(a.target.Registry(), isa))
		}
	}
	a.log.WithFields(logrus.Fields{
		"reference": ref,
		"isa":       r.ISA,
		"id":        id,
	}).Debug("Resolved reference.")
	return r, nil
}

// describeID names the outcome of a resolution.
func describeID(reg *hwi.Registry, id hwi.ID) string {
	switch id {
	case hwi.IllegalID:
		return "not an intrinsic"
	case hwi.IsSupportedFalse:
		return "IsSupported: false"
	case hwi.IsSupportedTrue:
		return "IsSupported: true"
	case hwi.IsSupportedDynamic:
		return "IsSupported: checked at run time"
	case hwi.ThrowPlatformNotSupported:
		return "throws PlatformNotSupportedException"
	default:
		return reg.ISAName(reg.LookupISA(id)) + "." + reg.LookupName(id)
	}
}

func (a *app) renderResolutions(w io.Writer, results []resolution) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Reference,
			r.ISA,
			strconv.Itoa(int(r.ID)),
			r.Result,
			strings.Join(r.Suggestions, ", "),
		})
	}
	return a.render(w, results, []string{"Reference", "ISA", "ID", "Result", "Did you mean"}, rows)
}
