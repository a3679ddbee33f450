package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/drblallo/odl/diagnostic"
)

func didOpenHandler(store *DocumentStore) protocol.TextDocumentDidOpenFunc {
	return func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
		doc := store.Open(params.TextDocument.URI, params.TextDocument.Text)
		return publishDiagnostics(context, doc)
	}
}

func didChangeHandler(store *DocumentStore) protocol.TextDocumentDidChangeFunc {
	return func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
		// Full sync: last content change carries the full text.
		text := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole).Text
		doc := store.Update(params.TextDocument.URI, text)
		return publishDiagnostics(context, doc)
	}
}

func didCloseHandler(store *DocumentStore) protocol.TextDocumentDidCloseFunc {
	return func(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
		uri := params.TextDocument.URI
		store.Close(uri)
		context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
		return nil
	}
}

// publishDiagnostics sends an empty diagnostics list when doc parsed
// cleanly, or exactly one diagnostic otherwise — a document either parses
// in full or stops at its first error, so there is never more than one.
func publishDiagnostics(context *glsp.Context, doc *Document) error {
	diags := []protocol.Diagnostic{}
	if doc.Err != nil {
		diags = append(diags, toProtocolDiagnostic(diagnostic.FromError(doc.Err, doc.ErrLoc)))
	}

	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Diagnostics: diags,
	})
	return nil
}

func toProtocolDiagnostic(d diagnostic.Diagnostic) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    toProtocolRange(d.Range),
		Severity: ptrTo(protocol.DiagnosticSeverity(d.Severity)),
		Source:   ptrTo(d.Source),
		Message:  d.Message,
	}
}

func toProtocolRange(r diagnostic.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

func toProtocolPosition(p diagnostic.Position) protocol.Position {
	return protocol.Position{Line: uint32(p.Line), Character: uint32(p.Character)}
}
