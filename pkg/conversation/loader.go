package conversation

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// record is the wire form of one utterance in an exported conversation log.
type record struct {
	Speaker   string `json:"speaker"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// envelope is the standard export format: metadata plus the record list.
type envelope struct {
	Metadata     map[string]any `json:"metadata"`
	Conversation []record       `json:"conversation"`
}

// timestampLayouts are the accepted timestamp formats, tried in order.
// Exports from the generation loop use naive ISO-8601 without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Load reads and parses a conversation log file.
func Load(path string) (*Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewInputError(fmt.Sprintf("failed to read %q", path), err)
	}
	return Parse(data)
}

// Parse parses a conversation log from JSON bytes. It accepts both the
// metadata envelope and a bare array of records, assigns sequence indexes
// by position, and validates the two-speaker invariant.
func Parse(data []byte) (*Conversation, error) {
	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}

	conv := &Conversation{
		Utterances: make([]Utterance, 0, len(records)),
		Speakers:   make([]string, 0, 2),
	}

	seen := make(map[string]bool, 2)
	for i, r := range records {
		if r.Speaker == "" {
			return nil, NewInputError(fmt.Sprintf("record %d: missing speaker field", i), nil)
		}
		if !seen[r.Speaker] {
			if len(conv.Speakers) == 2 {
				return nil, NewInputError(
					fmt.Sprintf("record %d: third speaker %q in a two-party log", i, r.Speaker), nil)
			}
			seen[r.Speaker] = true
			conv.Speakers = append(conv.Speakers, r.Speaker)
		}

		ts, err := parseTimestamp(r.Timestamp)
		if err != nil {
			return nil, NewInputError(fmt.Sprintf("record %d: bad timestamp %q", i, r.Timestamp), err)
		}

		conv.Utterances = append(conv.Utterances, Utterance{
			Speaker:   r.Speaker,
			Text:      r.Message,
			Timestamp: ts,
			Index:     i,
		})
	}

	return conv, nil
}

// decodeRecords unwraps the envelope form, falling back to a bare array.
func decodeRecords(data []byte) ([]record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Conversation != nil {
		return env.Conversation, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, NewInputError("not a conversation log (expected envelope or record array)", err)
	}
	return records, nil
}

// parseTimestamp tries each accepted layout in order.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing timestamp field")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
