package tools

import (
	"fmt"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/normalize"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/go-viper/mapstructure/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

// Call is one prepared invocation: the document to execute and the renderer
// for its response.
type Call struct {
	Document  *query.Document
	Normalize func(resp core.Response) ([]core.ContentBlock, error)
}

// Tool is a catalog entry that can turn raw arguments into a Call
type Tool interface {
	Definition() mcp.Tool
	Prepare(args map[string]any) (*Call, error)
}

// typedTool binds a descriptor to the builder and normalizer of one
// parameter type.
type typedTool[P any] struct {
	definition mcp.Tool
	build      func(*P) (*query.Document, error)
	normalize  func(core.Response, *P) ([]core.ContentBlock, error)
}

func define[P any](
	definition mcp.Tool,
	build func(*P) (*query.Document, error),
	normalize func(core.Response, *P) ([]core.ContentBlock, error),
) Tool {
	return &typedTool[P]{definition: definition, build: build, normalize: normalize}
}

func (t *typedTool[P]) Definition() mcp.Tool {
	return t.definition
}

func (t *typedTool[P]) Prepare(args map[string]any) (*Call, error) {
	params := new(P)
	if err := DecodeArguments(args, params); err != nil {
		return nil, err
	}
	doc, err := t.build(params)
	if err != nil {
		return nil, err
	}
	return &Call{
		Document: doc,
		Normalize: func(resp core.Response) ([]core.ContentBlock, error) {
			return t.normalize(resp, params)
		},
	}, nil
}

// DecodeArguments copies an untyped argument mapping into a parameter struct.
// Numbers are accepted for string ids and numeric strings for limits.
func DecodeArguments(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return core.NewError(err, core.ErrorCodeInvalidArguments, nil)
	}
	if err := decoder.Decode(args); err != nil {
		return core.NewError(fmt.Errorf("invalid arguments: %w", err), core.ErrorCodeInvalidArguments, nil)
	}
	return nil
}

// Registry is the immutable tool catalog
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry builds the catalog. Links in rendered output point at the
// normalizer's workspace.
func NewRegistry(n *normalize.Normalizer) *Registry {
	tools := []Tool{
		define(listBoardsTool(), query.ListBoards, n.ListBoards),
		define(getBoardGroupsTool(), query.GetBoardGroups, n.GetBoardGroups),
		define(getBoardColumnsTool(), query.GetBoardColumns, n.GetBoardColumns),
		define(createItemTool(), query.CreateItem, n.CreateItem),
		define(updateItemTool(), query.UpdateItem, n.UpdateItem),
		define(createUpdateTool(), query.CreateUpdate, n.CreateUpdate),
		define(listItemsInGroupsTool(), query.ListItemsInGroups, n.ListItemsInGroups),
		define(listSubitemsTool(), query.ListSubitems, n.ListSubitems),
		define(getItemUpdatesTool(), query.GetItemUpdates, n.GetItemUpdates),
		define(getDocsTool(), query.GetDocs, n.GetDocs),
		define(getDocContentTool(), query.GetDocContent, n.GetDocContent),
		define(createDocTool(), query.CreateDoc, n.CreateDoc),
		define(addDocBlockTool(), query.AddDocBlock, n.AddDocBlock),
		define(getItemFilesTool(), query.GetItemFiles, n.GetItemFiles),
		define(getUpdateFilesTool(), query.GetUpdateFiles, n.GetUpdateFiles),
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Definition().Name] = tool
	}
	return &Registry{tools: tools, byName: byName}
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.byName[name]
	return tool, ok
}

// Definitions returns every tool descriptor in registration order
func (r *Registry) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition())
	}
	return defs
}

// Names returns every tool name in registration order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		names = append(names, tool.Definition().Name)
	}
	return names
}
