package errcode

// Error code convention for notify messages:
// - 0: no error
// - 4xxx: recoverable business errors (resource missing, flow continues)
// - 5xxx: system errors (flow interrupted)
const (
	OK              = 0
	ResourceMissing = 4004
	SystemError     = 5000
)
