package core

import (
	"github.com/google/uuid"
)

// ID represents a unique identifier
type ID string

// NewID generates a new unique ID
func NewID() ID {
	return ID(uuid.New().String())
}

// String returns the string representation of the ID
func (id ID) String() string {
	return string(id)
}

// OperationKind is the GraphQL operation type of a document
type OperationKind string

const (
	OperationQuery    OperationKind = "query"
	OperationMutation OperationKind = "mutation"
)

// ContentTypeText is the only content type this adapter produces
const ContentTypeText = "text"

// ContentBlock is a single unit of tool output
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Text creates a text content block
func Text(text string) ContentBlock {
	return ContentBlock{Type: ContentTypeText, Text: text}
}

// Texts wraps a single message into a one-element block slice
func Texts(text string) []ContentBlock {
	return []ContentBlock{Text(text)}
}

// ToolInvocation is one incoming tool call
type ToolInvocation struct {
	ID        ID             `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// NewToolInvocation creates an invocation with a fresh ID
func NewToolInvocation(name string, arguments map[string]any) *ToolInvocation {
	if arguments == nil {
		arguments = map[string]any{}
	}
	return &ToolInvocation{
		ID:        NewID(),
		Name:      name,
		Arguments: arguments,
	}
}

// Response is a parsed GraphQL response body
type Response map[string]any

// Data returns the "data" object of the response, or nil when absent
func (r Response) Data() map[string]any {
	if r == nil {
		return nil
	}
	data, ok := r["data"].(map[string]any)
	if !ok {
		return nil
	}
	return data
}
