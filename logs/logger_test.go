package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("parsed", "nodes", 42)
		logger.Debug("hidden")
	})
	if isSystemdService() {
		return
	}
	out := buf.String()
	if !strings.Contains(out, "msg=parsed") || !strings.Contains(out, "nodes=42") {
		t.Fatalf("got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("got %q", out)
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %s", key)
	}
	if key := toJournalKey("max_depth"); key != "MAX_DEPTH" {
		t.Fatalf("got %s", key)
	}
}
