package inbox

import "encoding/json"

// Message is the canonical shape extracted from an inbound provider payload.
type Message struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// FallbackNumber is used when a payload carries no recognizable sender or
// recipient field.
const FallbackNumber = "unknown"

// Candidate field names per slot, tried in order. Providers do not share a
// schema, so each slot accepts the canonical name, the underscore variant
// and the msisdn-style abbreviation.
var (
	fromKeys = []string{"from", "from_number", "msisdn"}
	toKeys   = []string{"to", "to_number", "to_msisdn"}
	textKeys = []string{"text", "body", "message"}
)

// Normalize extracts (from, to, text) from an arbitrary inbound JSON body.
// It never fails: unparseable input, missing fields and wrongly-typed values
// all degrade to the fallback values instead of rejecting the message.
func Normalize(raw []byte) Message {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return Message{From: FallbackNumber, To: FallbackNumber, Text: ""}
	}

	payload := unwrap(body)

	return Message{
		From: firstString(payload, fromKeys, FallbackNumber),
		To:   firstString(payload, toKeys, FallbackNumber),
		Text: firstString(payload, textKeys, ""),
	}
}

// unwrap resolves the one level of nesting some providers use, where the
// interesting fields live under data.payload instead of at the top level.
func unwrap(body map[string]any) map[string]any {
	data, ok := body["data"].(map[string]any)
	if !ok {
		return body
	}
	payload, ok := data["payload"].(map[string]any)
	if !ok {
		return body
	}
	return payload
}

// firstString returns the first non-empty string value among the candidate
// keys, or the fallback when none match.
func firstString(payload map[string]any, keys []string, fallback string) string {
	for _, key := range keys {
		if value, ok := payload[key].(string); ok && value != "" {
			return value
		}
	}
	return fallback
}
