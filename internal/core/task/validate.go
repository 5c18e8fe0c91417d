package task

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"
)

// forbiddenRunes are reserved by the line grammar and may not appear
// in task text. Parentheses are special-cased: a single well-formed
// recurrence expression is allowed and extracted.
var forbiddenRunes = `@#|[]{}<\~` + "`"

var recurrenceExpr = regexp.MustCompile(`\(([^)]*(?:daily|weekdays|weekly|monthly|recur:)[^)]*)\)`)

// ExtractRecurrence splits an inline "(rule)" expression out of task
// text, returning the cleaned text and the bare rule (no parentheses).
// Text without a recurrence expression is returned unchanged.
func ExtractRecurrence(text string) (clean, rule string) {
	m := recurrenceExpr.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	clean = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	// Collapse the double space left behind by a mid-string removal.
	clean = strings.Join(strings.Fields(clean), " ")
	return clean, strings.TrimSpace(m[1])
}

// ValidateText checks task text against the grammar's reserved
// character set. The text may carry one recurrence expression in
// parentheses; any other use of parentheses is rejected.
func ValidateText(text string) error {
	if text == "" || strings.TrimSpace(text) != text {
		return criterio.NewFieldErrors("text", fmt.Errorf("task text cannot be empty or have leading/trailing spaces"))
	}

	var errs criterio.FieldErrorsBuilder
	for _, r := range text {
		if strings.ContainsRune(forbiddenRunes, r) {
			errs = errs.Append("text", fmt.Errorf("task text cannot contain %q", string(r)))
			break
		}
	}

	if strings.ContainsAny(text, "()") {
		clean, rule := ExtractRecurrence(text)
		if rule == "" || strings.ContainsAny(clean, "()") {
			errs = errs.Append("text", fmt.Errorf("parentheses are reserved for a single recurrence expression like (daily) or (weekly:mon)"))
		}
	}

	return errs.ToError()
}
