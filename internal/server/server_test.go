package server

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestInitializeHandlerAdvertisesFullSyncOnly(t *testing.T) {
	fn := initializeHandler("odl-lsp", "0.1.0")
	result, err := fn(nil, &protocol.InitializeParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	init, ok := result.(protocol.InitializeResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}

	caps := init.Capabilities
	if caps.TextDocumentSync == nil {
		t.Fatalf("expected TextDocumentSync to be set")
	}
	sync, ok := caps.TextDocumentSync.(protocol.TextDocumentSyncOptions)
	if !ok {
		t.Fatalf("unexpected TextDocumentSync type %T", caps.TextDocumentSync)
	}
	if sync.Change == nil || *sync.Change != protocol.TextDocumentSyncKindFull {
		t.Fatalf("expected full sync, got %+v", sync.Change)
	}
	if caps.DocumentSymbolProvider == nil {
		t.Fatalf("expected DocumentSymbolProvider to be reserved")
	}
	if caps.HoverProvider != nil || caps.CompletionProvider != nil {
		t.Fatalf("expected no hover/completion capabilities to be advertised")
	}
}

func TestNewHandlerWiresOnlySyncAndDiagnostics(t *testing.T) {
	handler, store := NewHandler("odl-lsp", "0.1.0")
	if store == nil {
		t.Fatalf("expected a document store")
	}
	if handler.TextDocumentDidOpen == nil || handler.TextDocumentDidChange == nil || handler.TextDocumentDidClose == nil {
		t.Fatalf("expected didOpen/didChange/didClose to be wired")
	}
	if handler.TextDocumentHover != nil {
		t.Fatalf("expected hover to remain unwired")
	}
}
