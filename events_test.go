package main

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestEventLoggerAppendsOrderedRecords(t *testing.T) {
	dir := t.TempDir()
	l := newEventLogger(dir)

	l.Append("ui", "session.opened", map[string]any{"chars": 11}, "cid-1")
	l.Append("system", "chat.reply", nil, "")

	f, err := os.Open(filepath.Join(dir, "events.jsonl"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer f.Close()

	var recs []eventRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r eventRecord
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("bad journal line: %v", err)
		}
		recs = append(recs, r)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d", len(recs))
	}
	if recs[0].Seq != 1 || recs[1].Seq != 2 {
		t.Fatalf("seqs = %d, %d", recs[0].Seq, recs[1].Seq)
	}
	if recs[0].Type != "session.opened" || recs[0].Source != "ui" || recs[0].CorrelationID != "cid-1" {
		t.Fatalf("rec[0] = %+v", recs[0])
	}
}

func TestNilEventLoggerIsSafe(t *testing.T) {
	var l *eventLogger
	l.Append("ui", "noop", nil, "")
}
