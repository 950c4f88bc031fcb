package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

// maxSuggestionDistance bounds how far a name may be from the input to be
// offered as a suggestion.
const maxSuggestionDistance = 4

// closestStrings returns the candidates nearest to s, up to minDistance
// edits away, sorted.
func closestStrings(minDistance int, s string, candidates iter.Seq[string]) []string {
	closest := []string{}
	for c := range candidates {
		d := levenshtein.ComputeDistance(s, c)
		switch {
		case d < minDistance:
			closest = []string{c}
			minDistance = d
		case d == minDistance:
			closest = append(closest, c)
		}
	}
	slices.Sort(closest)
	return slices.Compact(closest)
}

// didYouMean formats the suggestions for s as an error suffix.
func didYouMean(s string, candidates iter.Seq[string]) string {
	closest := closestStrings(maxSuggestionDistance+1, s, candidates)
	if len(closest) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(closest, ", "))
}

func isaNames(reg *hwi.Registry) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, isa := range reg.ISAs() {
			if !yield(reg.ISAName(isa)) {
				return
			}
		}
	}
}

// qualifiedNames yields ISA.Name for every intrinsic of reg.
func qualifiedNames(reg *hwi.Registry) iter.Seq[string] {
	return func(yield func(string) bool) {
		for in := range reg.All() {
			if !yield(reg.ISAName(in.ISA) + "." + in.Name) {
				return
			}
		}
	}
}

// memberNames yields the names of the intrinsics of isa.
func memberNames(reg *hwi.Registry, isa hwi.ISA) iter.Seq[string] {
	return func(yield func(string) bool) {
		for in := range reg.All() {
			if in.ISA == isa && !yield(in.Name) {
				return
			}
		}
	}
}

// classNames yields the class of every ISA of t, prefixed by the enclosing
// class for nested ones.
func classNames(t hwi.Target) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, isa := range t.Registry().ISAs() {
			class, enclosing, ok := t.ClassNames(isa)
			if !ok {
				continue
			}
			if enclosing != "" {
				class = enclosing + "." + class
			}
			if !yield(class) {
				return
			}
		}
	}
}
