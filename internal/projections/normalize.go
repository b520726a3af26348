// Package projections turns the raw analyst projection feed into averaged,
// ranked, tiered per-player projections.
package projections

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/internal/model"
)

// Normalize flattens the projection payload into one sequence of raw
// entries. The feed's shape is not guaranteed: it may be a flat list, a map
// of position groups to lists, or a map of groups to sub-maps to lists, and
// the whole thing may additionally arrive JSON-encoded as a string under a
// "data" key. All shape sniffing lives here so the aggregation that follows
// sees one canonical form.
func Normalize(raw []byte) ([]model.ProjectionEntry, error) {
	payload := bytes.TrimSpace(raw)
	if len(payload) == 0 {
		return nil, eris.New("projections: empty payload")
	}

	payload = bytes.TrimSpace(unwrapEnvelope(payload))
	if len(payload) == 0 || (payload[0] != '[' && payload[0] != '{') {
		return nil, eris.Errorf("projections: unexpected payload shape: %.40s", payload)
	}

	var entries []model.ProjectionEntry
	if err := flatten(payload, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// unwrapEnvelope peels the {"data": …} wrapper, decoding one level of
// double-encoding when the value is itself a JSON string.
func unwrapEnvelope(payload []byte) []byte {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(payload, &env); err != nil {
		return payload
	}
	data, ok := env["data"]
	if !ok {
		return payload
	}
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		return []byte(encoded)
	}
	return data
}

func flatten(raw json.RawMessage, out *[]model.ProjectionEntry) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return eris.Wrap(err, "projections: decode group")
		}
		for _, item := range items {
			var entry model.ProjectionEntry
			if err := json.Unmarshal(item, &entry); err != nil {
				return eris.Wrap(err, "projections: decode entry")
			}
			*out = append(*out, entry)
		}
		return nil
	case '{':
		var groups map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &groups); err != nil {
			return eris.Wrap(err, "projections: decode grouping")
		}
		// Walk groups in key order so normalization is deterministic.
		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := flatten(groups[k], out); err != nil {
				return err
			}
		}
		return nil
	default:
		// Scalar values among group keys are metadata (an "error" string, a
		// timestamp), not projection entries. Skip them.
		return nil
	}
}
