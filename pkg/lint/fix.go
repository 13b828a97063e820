package lint

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/leapstack-labs/lintkit/pkg/token"
	"github.com/leapstack-labs/lintkit/pkg/tree"
)

// FixConflictError records two edits whose spans overlap. Conflicts are a
// per-file, fix-phase condition: the conflicting edits are skipped and
// reported, linting output is unaffected.
type FixConflictError struct {
	RuleA string
	RuleB string
	Span  token.Span
}

func (e *FixConflictError) Error() string {
	return fmt.Sprintf("fix not applied: %s conflicts with %s at %s", e.RuleA, e.RuleB, e.Span)
}

// FixResult is the outcome of a bounded fix run.
type FixResult struct {
	// Output is the corrected source text.
	Output []byte
	// Remaining are the diagnostics still present in Output.
	Remaining []Diagnostic
	// IterationsUsed counts lint/apply passes performed.
	IterationsUsed int
	// EditsApplied counts text edits applied across all iterations.
	EditsApplied int
	// Conflicts lists edit pairs skipped because their spans overlap.
	Conflicts []*FixConflictError
}

// ApplyEdits applies non-overlapping edits to src and returns the rewritten
// text, the number of edits applied, and any conflicts found.
//
// Edits are sorted by start offset and checked pairwise in one scan: two
// edits conflict when their half-open spans overlap, or when both are
// zero-width at the same offset (no implicit ordering between insertions
// is assumed safe). Both members of a conflicting pair are skipped, leaving
// their spans' text untouched. Bytes outside applied spans are preserved
// verbatim.
func ApplyEdits(src []byte, edits []TextEdit) ([]byte, int, []*FixConflictError) {
	if len(edits) == 0 {
		return src, 0, nil
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start.Offset != sorted[j].Span.Start.Offset {
			return sorted[i].Span.Start.Offset < sorted[j].Span.Start.Offset
		}
		return sorted[i].Span.End.Offset < sorted[j].Span.End.Offset
	})

	skip := make([]bool, len(sorted))
	var conflicts []*FixConflictError
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			// Sorted by start: once j starts at or past i's end and they are
			// not both empty at the same point, no later edit can conflict
			// with i.
			if sorted[j].Span.Start.Offset > sorted[i].Span.End.Offset {
				break
			}
			if !editsConflict(sorted[i], sorted[j]) {
				continue
			}
			if !skip[i] || !skip[j] {
				conflicts = append(conflicts, &FixConflictError{
					RuleA: sorted[i].RuleID,
					RuleB: sorted[j].RuleID,
					Span:  sorted[i].Span.Cover(sorted[j].Span),
				})
			}
			skip[i] = true
			skip[j] = true
		}
	}

	var out bytes.Buffer
	out.Grow(len(src))
	cursor := 0
	applied := 0
	for i, e := range sorted {
		if skip[i] {
			continue
		}
		start, end := e.Span.Start.Offset, e.Span.End.Offset
		if start < cursor || end > len(src) {
			// Out-of-range edit from a misbehaving rule; leave the text alone.
			continue
		}
		out.Write(src[cursor:start])
		out.WriteString(e.NewText)
		cursor = end
		applied++
	}
	out.Write(src[cursor:])

	if applied == 0 {
		return src, 0, conflicts
	}
	return out.Bytes(), applied, conflicts
}

// editsConflict reports whether two edits cannot both be applied. Spans are
// half-open; two zero-width edits at the same offset conflict even though
// their spans do not overlap.
func editsConflict(a, b TextEdit) bool {
	if a.Span.Empty() && b.Span.Empty() {
		return a.Span.Start.Offset == b.Span.Start.Offset
	}
	return a.Span.Overlaps(b.Span)
}

// collectEdits gathers edits from diagnostics whose rule is enabled and
// marked auto-fixable, stamping each edit with its proposing rule.
// Engine-emitted diagnostics (syntax, internal) never carry fixes.
func (a *Analyzer) collectEdits(diags []Diagnostic) []TextEdit {
	var edits []TextEdit
	for _, d := range diags {
		if len(d.Fixes) == 0 {
			continue
		}
		rule, ok := a.byID[d.RuleID]
		if !ok || !rule.Fixable() {
			continue
		}
		for _, fix := range d.Fixes {
			for _, e := range fix.Edits {
				e.RuleID = d.RuleID
				edits = append(edits, e)
			}
		}
	}
	return edits
}

// Fix lints src, applies all non-conflicting edits from auto-fixable rules,
// and repeats on the rewritten text up to maxIterations times.
//
// Fixing is not guaranteed to reach a fixed point in one pass: an applied
// edit can expose a new violation. Each iteration re-parses the corrected
// text rather than patching the tree. If fixable diagnostics remain when
// the iteration cap is reached they are reported in Remaining rather than
// looping further.
func (a *Analyzer) Fix(src []byte, parser tree.Parser, maxIterations int) FixResult {
	result := FixResult{Output: src}
	if maxIterations < 1 {
		maxIterations = 1
	}

	var last Result
	relint := true
	for result.IterationsUsed < maxIterations {
		last = a.Lint(result.Output, parser)
		result.IterationsUsed++
		relint = false

		if last.Status == StatusParseFailed {
			break
		}
		edits := a.collectEdits(last.Diagnostics)
		if len(edits) == 0 {
			break
		}

		next, applied, conflicts := ApplyEdits(result.Output, edits)
		result.Conflicts = append(result.Conflicts, conflicts...)
		if applied == 0 {
			// Only conflicting or out-of-range edits remain; stop rather
			// than spinning on text that will not change.
			break
		}
		result.Output = next
		result.EditsApplied += applied
		relint = true
	}

	if relint {
		// The cap was hit right after applying edits; report diagnostics
		// against the final text without consuming another fix iteration.
		last = a.Lint(result.Output, parser)
	}
	result.Remaining = last.Diagnostics
	return result
}
