package validation

import (
	"fmt"

	"github.com/jonathan/resume-validator/internal/types"
)

// ValidateSemantics applies cross-field checks to a structurally valid resume:
// date-range consistency for every non-null duration, and work-history
// ordering. It must only be called after the structural pass reported zero
// violations, since it assumes well-formed values throughout.
func ValidateSemantics(resume *types.Resume) []types.Violation {
	var violations []types.Violation

	for i := range resume.WorkHistory {
		path := fmt.Sprintf("workHistory[%d].duration", i)
		violations = append(violations, checkDateRange(path, resume.WorkHistory[i].Duration)...)
	}
	violations = append(violations, checkWorkHistoryOrder(resume.WorkHistory)...)

	for i := range resume.EducationHistory {
		path := fmt.Sprintf("educationHistory[%d].duration", i)
		violations = append(violations, checkDateRange(path, resume.EducationHistory[i].Duration)...)
	}

	return violations
}

// checkDateRange verifies start <= end at the coarsest common granularity.
func checkDateRange(path string, d *types.DateRange) []types.Violation {
	if d == nil {
		return nil
	}
	start, okStart := parsePartialDate(d.Start)
	end, okEnd := parsePartialDate(d.End)
	if !okStart || !okEnd {
		// The structural pass already reported the pattern violation.
		return nil
	}
	if comparePartialDates(start, end) > 0 {
		return []types.Violation{{
			Path:     path,
			Kind:     types.KindInvalidDateRange,
			Severity: types.KindInvalidDateRange.Severity(),
			Details:  fmt.Sprintf("start %q is after end %q", d.Start, d.End),
		}}
	}
	return nil
}

// checkWorkHistoryOrder verifies that work history entries are sorted most
// recent first. The sort key is the end date; a null duration counts as
// ongoing and sorts before any dated entry. Entries whose keys tie at their
// shared granularity are in order. Violations are warning-class: the source
// schema states the ordering as a description, not an enforced constraint.
func checkWorkHistoryOrder(items []types.WorkHistoryItem) []types.Violation {
	var violations []types.Violation

	for i := 0; i+1 < len(items); i++ {
		current, next := items[i], items[i+1]

		// Ongoing entries sort first; a dated entry followed by an ongoing one
		// is out of order.
		if next.Duration == nil {
			if current.Duration != nil {
				violations = append(violations, orderingViolation(i+1,
					"ongoing entry appears after a dated entry; work history should be ordered most recent first"))
			}
			continue
		}
		if current.Duration == nil {
			continue
		}

		currentEnd, okCurrent := parsePartialDate(current.Duration.End)
		nextEnd, okNext := parsePartialDate(next.Duration.End)
		if !okCurrent || !okNext {
			continue
		}
		if comparePartialDates(currentEnd, nextEnd) < 0 {
			violations = append(violations, orderingViolation(i+1,
				fmt.Sprintf("entry ends %q, more recent than the preceding entry ending %q; work history should be ordered most recent first",
					next.Duration.End, current.Duration.End)))
		}
	}

	return violations
}

func orderingViolation(index int, details string) types.Violation {
	return types.Violation{
		Path:     fmt.Sprintf("workHistory[%d]", index),
		Kind:     types.KindOrderingViolation,
		Severity: types.KindOrderingViolation.Severity(),
		Details:  details,
	}
}
