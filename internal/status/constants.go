// internal/status/constants.go
package status

// Activity type codes.
// These values are defined by the remote endpoint and MUST NOT be configurable.

// ActivityType is the numeric activity kind sent on the wire.
type ActivityType int

// ActivityPlaying renders as "Playing <name>".
const ActivityPlaying ActivityType = 0

// ActivityStreaming renders as "Streaming <name>" and is the only type that carries a URL.
const ActivityStreaming ActivityType = 1

// ActivityListening renders as "Listening to <name>".
const ActivityListening ActivityType = 2

// ActivityWatching renders as "Watching <name>".
const ActivityWatching ActivityType = 3

// String returns the human label used in log lines.
// Codes outside the known range are passed through to the endpoint untouched,
// so they still need a label.
func (t ActivityType) String() string {
	switch t {
	case ActivityPlaying:
		return "Playing"
	case ActivityStreaming:
		return "Streaming"
	case ActivityListening:
		return "Listening"
	case ActivityWatching:
		return "Watching"
	default:
		return "Unknown"
	}
}
