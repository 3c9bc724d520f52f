package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/bergen/cmds"
	"github.com/reusee/bergen/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithProgram(context.Background(), "foo")
		logger.InfoContext(ctx, "test", "hello", "world!")
		out := buf.String()
		if !strings.Contains(out, "hello=world!") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "program=foo") {
			t.Fatalf("got %v", out)
		}
	})
}

func TestNewSpan(t *testing.T) {
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelInfo)

	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "load")
		_, span2 := newSpan(ctx1, "execute")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "operation=load") {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")

	if err := WrapSpan(context.Background(), errFoo); err != errFoo {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	var spanErr SpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("got %v", err)
	}
	if spanErr.Span != "bar" {
		t.Fatalf("got %v", spanErr.Span)
	}
	if err.Error() != "foo (span bar)" {
		t.Fatalf("got %v", err)
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span"); key != "LOGS_SPAN" {
		t.Fatalf("got %v", key)
	}
	if key := toJournalKey("max-steps2"); key != "MAX_STEPS2" {
		t.Fatalf("got %v", key)
	}
}

func TestFlagsDescribed(t *testing.T) {
	buf := new(bytes.Buffer)
	cmds.GlobalExecutor.WriteUsage(buf)
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.HasPrefix(line, "-log-") {
			continue
		}
		if !strings.Contains(line, "\t") {
			t.Fatalf("no description: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "-log-json\twrite terminal logs as JSON") {
		t.Fatalf("got %v", buf.String())
	}
}
