package main

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffPreviewLines renders a compact line diff between the current history
// top and an incoming suggestion, for the paste affordance. Output is capped
// at maxLines; a trailing ellipsis line marks truncation.
func diffPreviewLines(before, after string, maxLines int) []string {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []string
	for _, d := range diffs {
		chunk := strings.Split(d.Text, "\n")
		if len(chunk) > 0 && chunk[len(chunk)-1] == "" {
			chunk = chunk[:len(chunk)-1]
		}
		for _, line := range chunk {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out = append(out, "- "+line)
			case diffmatchpatch.DiffInsert:
				out = append(out, "+ "+line)
			default:
				out = append(out, "  "+line)
			}
			if len(out) >= maxLines {
				return append(out, "  …")
			}
		}
	}
	return out
}
