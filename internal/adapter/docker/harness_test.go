package docker

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

func TestHostConfigLimits(t *testing.T) {
	hostCfg := hostConfig(domain.ExecutionLimits{
		Timeout:     10 * time.Second,
		MemoryMB:    256,
		CPUFraction: 0.5,
	})

	if hostCfg.Memory != 256*1024*1024 {
		t.Errorf("Memory = %d, want %d", hostCfg.Memory, 256*1024*1024)
	}
	if hostCfg.NanoCPUs != 500_000_000 {
		t.Errorf("NanoCPUs = %d, want 500000000", hostCfg.NanoCPUs)
	}
}

func TestRenderHarness(t *testing.T) {
	code := "def solution(a, b):\n    return a + b"
	script := RenderHarness(code, json.RawMessage(`[1, 2]`))

	if !strings.Contains(script, code) {
		t.Error("rendered script does not contain the submitted code")
	}
	if !strings.Contains(script, `json.loads("[1, 2]")`) {
		t.Errorf("input not embedded as a string literal:\n%s", script)
	}
}

func TestRenderHarnessEscaping(t *testing.T) {
	script := RenderHarness("def solution(s):\n    return s", json.RawMessage(`{"s": "line\nbreak \"quoted\""}`))

	// the JSON payload must ride in as one escaped literal, not raw
	if !strings.Contains(script, `json.loads("{\"s\": \"line\\nbreak \\\"quoted\\\"\"}")`) {
		t.Errorf("special characters not escaped:\n%s", script)
	}
}

func TestRenderHarnessEmptyInput(t *testing.T) {
	script := RenderHarness("def solution(x):\n    return x", nil)

	if !strings.Contains(script, `json.loads("null")`) {
		t.Errorf("empty input should become null:\n%s", script)
	}
}

func frame(stream byte, payload string) []byte {
	header := make([]byte, 8)
	header[0] = stream
	binary.BigEndian.PutUint32(header[4:8], uint32(len(payload)))
	return append(header, payload...)
}

func TestDemuxLogs(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(frame(1, "out one\n"))
	buf.Write(frame(2, "err one\n"))
	buf.Write(frame(1, "out two\n"))

	stdout, stderr := demuxLogs(&buf)

	if stdout != "out one\nout two\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "err one\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDemuxLogsTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(frame(1, "complete"))
	// header promising more bytes than available
	buf.Write([]byte{1, 0, 0, 0, 0, 0, 0, 99})

	stdout, stderr := demuxLogs(&buf)

	if stdout != "complete" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDemuxLogsStdoutKeepsTail(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 11*1024; i++ {
		buf.Write(frame(1, "debug\n"))
	}
	buf.Write(frame(1, "5\n"))

	stdout, _ := demuxLogs(&buf)

	if len(stdout) > maxStreamBytes {
		t.Errorf("stdout length = %d, want <= %d", len(stdout), maxStreamBytes)
	}
	// the result payload rides on the final line; it must outlive the flood
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if got := lines[len(lines)-1]; got != "5" {
		t.Errorf("last stdout line = %q, want %q", got, "5")
	}
}

func TestDemuxLogsStderrKeepsHead(t *testing.T) {
	var buf bytes.Buffer
	big := strings.Repeat("x", 40*1024)
	buf.Write(frame(2, "Traceback: "+big))
	buf.Write(frame(2, big))
	buf.Write(frame(1, "after the flood"))

	stdout, stderr := demuxLogs(&buf)

	if len(stderr) != maxStreamBytes {
		t.Errorf("stderr length = %d, want %d", len(stderr), maxStreamBytes)
	}
	if !strings.HasPrefix(stderr, "Traceback: ") {
		t.Errorf("stderr head lost, starts with %q", stderr[:16])
	}
	// framing must survive the cap
	if stdout != "after the flood" {
		t.Errorf("stdout = %q", stdout)
	}
}
