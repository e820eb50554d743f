package parse

// SessionMeta is what the first record of a session file declares about
// the session. All fields may be empty.
type SessionMeta struct {
	Timestamp  string
	Cwd        string
	Originator string
}

// Message is one user or assistant turn of a conversation.
type Message struct {
	Role      string // "user" or "assistant"
	Content   string
	Timestamp string
}
