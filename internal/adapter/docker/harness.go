package docker

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Calling convention: the submitted code defines a function named solution.
// The harness deserializes the case input, calls it (dict spreads to kwargs,
// list to positional args, anything else is passed as-is) and writes the
// JSON-encoded return value as the final line of stdout. Everything else the
// code prints stays diagnostic. An uncaught exception goes to stderr and
// exits non-zero.
const harnessTemplate = `import json
import sys

%s

_input = json.loads(%s)

def _invoke():
    if isinstance(_input, dict):
        return solution(**_input)
    if isinstance(_input, list):
        return solution(*_input)
    return solution(_input)

try:
    _result = _invoke()
except Exception as exc:
    print(exc, file=sys.stderr)
    sys.exit(1)

sys.stdout.write("\n" + json.dumps(_result) + "\n")
`

// RenderHarness produces the self-contained script executed in the container.
func RenderHarness(code string, input json.RawMessage) string {
	payload := string(input)
	if payload == "" {
		payload = "null"
	}
	// strconv.Quote escapes are a subset of Python string escapes, so the
	// JSON rides in as an ordinary string literal.
	return fmt.Sprintf(harnessTemplate, code, strconv.Quote(payload))
}

const maxStreamBytes = 64 * 1024

// demuxLogs splits Docker's multiplexed log stream into stdout and stderr.
// Frames carry an 8-byte header: stream type, three zero bytes, big-endian
// payload length. Each stream is capped to keep hostile output bounded:
// stderr keeps its head, stdout keeps its tail because the result payload
// rides on the final line and must survive any diagnostics printed before it.
func demuxLogs(r io.Reader) (string, string) {
	var stdout, stderr bytes.Buffer
	header := make([]byte, 8)

	for {
		if _, err := io.ReadFull(r, header); err != nil {
			break
		}
		size := binary.BigEndian.Uint32(header[4:8])
		payload := io.LimitReader(r, int64(size))

		var err error
		if header[0] == 2 {
			err = capHead(&stderr, payload)
		} else {
			err = capTail(&stdout, payload)
		}
		if err != nil {
			break
		}
	}

	return stdout.String(), stderr.String()
}

// capHead keeps the first maxStreamBytes and drains the rest so framing
// stays aligned.
func capHead(dst *bytes.Buffer, payload io.Reader) error {
	remaining := int64(maxStreamBytes - dst.Len())
	if remaining > 0 {
		if _, err := io.CopyN(dst, payload, remaining); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
	_, err := io.Copy(io.Discard, payload)
	return err
}

// capTail keeps the last maxStreamBytes, discarding from the front as new
// output arrives.
func capTail(dst *bytes.Buffer, payload io.Reader) error {
	chunk := make([]byte, 32*1024)
	for {
		n, err := payload.Read(chunk)
		if n > 0 {
			dst.Write(chunk[:n])
			if over := dst.Len() - maxStreamBytes; over > 0 {
				dst.Next(over)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
