package ir

// Version constants for the tool.
const (
	// Version is the seebinum release version.
	Version = "0.3.0"

	// ValueBytes is the capacity of a Value buffer, wide enough for the
	// widest supported encoding.
	ValueBytes = 8
)
