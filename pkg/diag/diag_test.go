package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"too long", Diagnostic{Kind: LineTooLong, Line: 3, Length: 2048}, "line 3 is too long: 2048 characters - skipping"},
		{"malformed line", Diagnostic{Kind: MalformedLine, Line: 2, Raw: "justtext"}, `bad line 2 in config: "justtext"`},
		{"malformed mac", Diagnostic{Kind: MalformedMAC, Key: "external_nic", Raw: "not-a-mac"}, `failed to parse mac for external_nic: "not-a-mac"`},
		{"unknown kind", Diagnostic{Kind: "other", Raw: "x"}, `other: "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short"))

	long := strings.Repeat("a", SnippetLimit+50)
	assert.Len(t, Truncate(long), SnippetLimit)
}

func TestCollector_ConcurrentReport(t *testing.T) {
	c := &Collector{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := MalformedLine
			if i%2 == 0 {
				kind = MalformedMAC
			}
			c.Report(Diagnostic{Kind: kind, Line: i})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
	assert.Equal(t, 25, c.Count(MalformedMAC))
	assert.Equal(t, 25, c.Count(MalformedLine))
	assert.Equal(t, 0, c.Count(LineTooLong))
}

func TestCollector_DiagnosticsIsCopy(t *testing.T) {
	c := &Collector{}
	c.Report(Diagnostic{Kind: MalformedLine, Raw: "a"})

	got := c.Diagnostics()
	got[0].Raw = "mutated"

	assert.Equal(t, "a", c.Diagnostics()[0].Raw)
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Log(logger).Report(Diagnostic{Kind: MalformedMAC, Key: "admin_nic", Raw: "zz", Length: 2})

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "kind=malformed-mac")
	assert.Contains(t, out, "key=admin_nic")
	assert.NotContains(t, out, "line=")
}

func TestLogLevel(t *testing.T) {
	d := Diagnostic{Kind: MalformedLine, Line: 4, Raw: "garbage", Length: 7}

	var buf bytes.Buffer
	info := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	LogLevel(info, slog.LevelDebug).Report(d)
	assert.Empty(t, buf.String(), "debug diagnostics must not reach an info logger")

	debug := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	LogLevel(debug, slog.LevelDebug).Report(d)
	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "line=4")
}

func TestMulti(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	r := Multi(a, nil, b, Discard)

	r.Report(Diagnostic{Kind: LineTooLong})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}
