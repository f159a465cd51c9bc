package plan

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/planforge/pkg/errors"
)

// StripFence removes a Markdown code-fence wrapper from a text-generation
// response, returning the inner payload. Responses arrive either bare or
// wrapped in ```json ... ``` (occasionally a plain ``` fence); anything
// else is returned trimmed and untouched.
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json") up to the first newline.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || first == "json" || first == "JSON" {
			s = s[i+1:]
		}
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Decode parses a text-generation response into a Plan.
//
// The text may be wrapped in a Markdown code fence, which is stripped
// first. Failures are typed:
//
//   - MALFORMED_RESPONSE: the payload is not syntactically valid JSON.
//   - INCOMPLETE_SCHEMA: it parses but lacks "dimensions" or "rooms".
//   - INTERNAL_ERROR: any other failure while inspecting the payload
//     (for example, sections present but of the wrong shape).
//
// Decode performs no per-room coercion: geometry typing is checked lazily,
// room by room, by the renderer. It is a pure function of its input.
func Decode(text string) (*Plan, error) {
	payload := StripFence(text)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedResponse, err, "response is not valid JSON")
	}

	dims, ok := raw["dimensions"]
	if !ok {
		return nil, errors.New(errors.ErrCodeIncompleteSchema, "payload missing %q", "dimensions")
	}
	roomsRaw, ok := raw["rooms"]
	if !ok {
		return nil, errors.New(errors.ErrCodeIncompleteSchema, "payload missing %q", "rooms")
	}

	var p Plan
	if err := json.Unmarshal(dims, &p.Dimensions); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "dimensions has an unexpected shape")
	}
	if err := json.Unmarshal(roomsRaw, &p.Rooms); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rooms has an unexpected shape")
	}

	return &p, nil
}
