package normalize

import (
	"fmt"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/query"
)

// GetDocs renders monday-get-docs
func (n *Normalizer) GetDocs(resp core.Response, _ *query.GetDocsParams) ([]core.ContentBlock, error) {
	docs, err := decodeList[Doc](field(resp, "docs"))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return core.Texts("No documents found."), nil
	}
	return paragraphs("Documents:", docs, func(sb *strings.Builder, d Doc) {
		fmt.Fprintf(sb, "Document ID: %s\nName: %s\nCreated: %s\nWorkspace ID: %s\nFolder ID: %s\nUser ID: %s\n",
			d.ID, d.Name, d.CreatedAt, orNone(d.WorkspaceID), orNone(d.FolderID), d.UserID)
	}), nil
}

// GetDocContent renders monday-get-doc-content
func (n *Normalizer) GetDocContent(resp core.Response, p *query.DocContentParams) ([]core.ContentBlock, error) {
	docs, err := decodeList[Doc](field(resp, "docs"))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return core.Texts(fmt.Sprintf("Document with ID %s not found.", p.DocID)), nil
	}
	doc := docs[0]
	return core.Texts(fmt.Sprintf("Document ID: %s\nName: %s\n\nContent:\n%s", doc.ID, doc.Name, contentText(doc.Content))), nil
}

// CreateDoc renders monday-create-doc with a link to the new document
func (n *Normalizer) CreateDoc(resp core.Response, _ *query.CreateDocParams) ([]core.ContentBlock, error) {
	doc, err := decodeOne[Doc](field(resp, "create_doc"))
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.ID == "" {
		return core.Texts("Failed to create document."), nil
	}
	return core.Texts(fmt.Sprintf("Document created successfully!\nTitle: %s\nID: %s\nURL: %s",
		doc.Name, doc.ID, n.link("docs", "d", doc.ID))), nil
}

// AddDocBlock renders monday-add-doc-block
func (n *Normalizer) AddDocBlock(resp core.Response, _ *query.AddDocBlockParams) ([]core.ContentBlock, error) {
	block, err := decodeOne[Block](field(resp, "add_doc_block"))
	if err != nil {
		return nil, err
	}
	if block == nil || block.ID == "" {
		return core.Texts("Failed to add block to document."), nil
	}
	return core.Texts(fmt.Sprintf("Block added successfully!\nID: %s\nType: %s", block.ID, block.Type)), nil
}
