package main

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

// The model is instructed to wrap a proposed replacement in a fenced json
// block carrying a single enhanced_content field. Only the first such block
// in a reply is honored. The trailing newline of the fence is consumed with
// it so removal does not leave a blank line behind.
var enhancedBlockRE = regexp.MustCompile("(?s)```json\\s*(\\{.*?\"enhanced_content\"\\s*:.*?\\})\\s*```\n?")

var blankRunRE = regexp.MustCompile(`\n{3,}`)

// parseReply splits a model reply into the text to display and the suggested
// replacement, if the reply carries a well-formed enhanced_content block.
// A malformed block degrades to "no suggestion": the reply is shown verbatim,
// broken fence included, and the decode failure is only logged.
func parseReply(reply string, log *slog.Logger) (display string, suggestion string, ok bool) {
	loc := enhancedBlockRE.FindStringSubmatchIndex(reply)
	if loc == nil {
		return reply, "", false
	}

	var payload struct {
		EnhancedContent *string `json:"enhanced_content"`
	}
	raw := reply[loc[2]:loc[3]]
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.EnhancedContent == nil {
		log.Warn("suggestion block did not decode, showing reply as-is", "error", err)
		return reply, "", false
	}

	display = reply[:loc[0]] + reply[loc[1]:]
	display = blankRunRE.ReplaceAllString(display, "\n\n")
	display = strings.TrimSpace(display)
	return display, *payload.EnhancedContent, true
}
