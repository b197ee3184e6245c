package event

// EventSchemaVersion is stamped on every shop notification. Renderers that
// read the SSE stream compare it before decoding payloads.
const EventSchemaVersion = "1.0"

// ErrMsgObserversFailedFmt wraps the joined observer errors of one publish
const ErrMsgObserversFailedFmt = "%d observer(s) failed on %s: %w"
