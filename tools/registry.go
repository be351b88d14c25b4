// Package tools provides a metadata-driven registry for MCP tool
// definitions. It defines the server's tools declaratively and registers
// them with type-safe handlers that convert every failure into an error
// envelope before it reaches the transport.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to an NPS client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "find_parks")
	Name string

	// Method is the client method name (e.g., "FindParks")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, read)
	Category string

	// ReadOnly indicates the tool doesn't modify upstream state
	ReadOnly bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
