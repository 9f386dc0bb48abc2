// internal/status/entry.go
package status

// Entry is one configured presence.
// It contains no logic and is never mutated after load.
type Entry struct {
	Text      string
	EmojiID   string
	EmojiName string

	// UseCustomEmoji gates EmojiID. Without it only EmojiName is sent.
	UseCustomEmoji bool

	// Activity is optional. nil means "do not touch activities".
	Activity *Activity
}

// Activity is the "doing X" part of a presence.
type Activity struct {
	Type ActivityType
	Name string
	URL  string // honored only for ActivityStreaming
}

// Payload is exactly what goes on the wire.
// Built fresh per request; never stored.
type Payload struct {
	CustomStatus CustomStatus `json:"custom_status"`

	// nil slice => key omitted. The endpoint treats a missing key
	// differently from an empty list.
	Activities []PayloadActivity `json:"activities,omitempty"`
}

// CustomStatus is the text + emoji block.
type CustomStatus struct {
	Text      string  `json:"text"`
	EmojiID   *string `json:"emoji_id"`
	EmojiName string  `json:"emoji_name"`
}

// PayloadActivity is one element of the activities list.
type PayloadActivity struct {
	Type ActivityType `json:"type"`
	Name string       `json:"name"`
	URL  *string      `json:"url"`
}
