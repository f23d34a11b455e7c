package rawrecord

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Resolve returns the first usable value for a logical field.
//
// Candidates are tried verbatim first, in order. Only when none of them is
// present does a second, tolerant pass run: each candidate and each actual key
// is trimmed, NFKC-normalised and case-folded, and a key matches when it equals
// or contains the candidate. Values that are nil or the empty string never count
// as found. The boolean is false when nothing matched.
func Resolve(rec Record, candidates ...string) (any, bool) {
	for _, c := range candidates {
		if v, ok := rec.Get(c); ok && present(v) {
			return v, true
		}
	}

	folder := cases.Fold()
	keys := make([]string, len(rec.fields))
	for i, f := range rec.fields {
		keys[i] = foldKey(folder, f.Key)
	}

	for _, c := range candidates {
		target := foldKey(folder, c)
		if target == "" {
			continue
		}
		for i, k := range keys {
			if k != target && !strings.Contains(k, target) {
				continue
			}
			if v := rec.fields[i].Value; present(v) {
				return v, true
			}
		}
	}
	return nil, false
}

func foldKey(c cases.Caser, s string) string {
	return c.String(norm.NFKC.String(strings.TrimSpace(s)))
}

func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}
