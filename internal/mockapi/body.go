package mockapi

import (
	"encoding/json"
)

// decodeBody fills out from a request payload. Payloads may arrive as
// structured values, raw JSON bytes, or JSON text; nil and malformed input
// degrade to the zero value instead of failing, and unknown keys are
// dropped. This mirrors the forgiving body handling of the mock surface.
func decodeBody(body any, out any) {
	if body == nil {
		return
	}
	switch v := body.(type) {
	case json.RawMessage:
		_ = json.Unmarshal(v, out)
	case []byte:
		_ = json.Unmarshal(v, out)
	case string:
		_ = json.Unmarshal([]byte(v), out)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}
		_ = json.Unmarshal(raw, out)
	}
}
