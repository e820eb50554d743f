package parse

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// Top-level record in Codex JSONL
type record struct {
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
}

// session_meta payload
type metaPayload struct {
	Timestamp  string `json:"timestamp"`
	Cwd        string `json:"cwd"`
	Originator string `json:"originator"`
}

// response_item payload; Content stays raw because it is either a plain
// string or a list of content items
type messagePayload struct {
	Type    string          `json:"type"`
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ReadMetadata reads the first non-blank line of a session file and
// returns its session_meta fields. Any failure (missing file, malformed
// line, wrong record type) yields an empty SessionMeta.
func ReadMetadata(path string) SessionMeta {
	f, err := os.Open(path)
	if err != nil {
		return SessionMeta{}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return SessionMeta{}
		}
		if rec.Type != "session_meta" {
			return SessionMeta{}
		}

		var meta metaPayload
		if err := json.Unmarshal(rec.Payload, &meta); err != nil {
			return SessionMeta{}
		}

		ts := meta.Timestamp
		if ts == "" {
			ts = rec.Timestamp
		}
		return SessionMeta{
			Timestamp:  ts,
			Cwd:        meta.Cwd,
			Originator: meta.Originator,
		}
	}

	return SessionMeta{}
}

// ParseConversation streams a session file and extracts its user and
// assistant messages in file order. Malformed lines and unrecognized
// record types are skipped. Only a whole-file read failure is returned
// as an error, with no messages.
func ParseConversation(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var messages []Message

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.Type != "response_item" {
			continue
		}

		var msg messagePayload
		if err := json.Unmarshal(rec.Payload, &msg); err != nil {
			continue
		}
		if msg.Type != "message" {
			continue
		}
		if msg.Role != "user" && msg.Role != "assistant" {
			continue
		}

		text := extractText(msg.Content)
		if text == "" {
			continue
		}

		messages = append(messages, Message{
			Role:      msg.Role,
			Content:   text,
			Timestamp: rec.Timestamp,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// extractText flattens a message content value into plain text. Content
// is either a string, or a list whose elements are strings or typed
// text items; elements of any other shape are skipped.
func extractText(content json.RawMessage) string {
	if len(content) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(content, &elems); err != nil {
		return ""
	}

	var parts []string
	for _, e := range elems {
		var es string
		if err := json.Unmarshal(e, &es); err == nil {
			if es != "" {
				parts = append(parts, es)
			}
			continue
		}

		var item contentItem
		if err := json.Unmarshal(e, &item); err != nil {
			continue
		}
		switch item.Type {
		case "input_text", "output_text", "text":
			if item.Text != "" {
				parts = append(parts, item.Text)
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}
