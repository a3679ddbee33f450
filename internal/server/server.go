package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// NewHandler creates a protocol.Handler for the odl language server. Only
// full-document sync and diagnostics are wired; DocumentSymbolProvider is
// advertised but reserved for a future release.
func NewHandler(name, version string) (*protocol.Handler, *DocumentStore) {
	store := NewDocumentStore()

	handler := &protocol.Handler{
		Initialize:  initializeHandler(name, version),
		Initialized: initializedHandler(),
		Shutdown:    shutdownHandler(),
		SetTrace:    setTraceHandler(),

		TextDocumentDidOpen:   didOpenHandler(store),
		TextDocumentDidChange: didChangeHandler(store),
		TextDocumentDidClose:  didCloseHandler(store),
	}

	return handler, store
}

func initializeHandler(name, version string) protocol.InitializeFunc {
	return func(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
		capabilities := protocol.InitializeResult{
			Capabilities: protocol.ServerCapabilities{
				TextDocumentSync: protocol.TextDocumentSyncOptions{
					OpenClose: boolPtr(true),
					Change:    ptrTo(protocol.TextDocumentSyncKindFull),
				},
				DocumentSymbolProvider: &protocol.DocumentSymbolOptions{},
			},
			ServerInfo: &protocol.InitializeResultServerInfo{
				Name:    name,
				Version: &version,
			},
		}
		return capabilities, nil
	}
}

func initializedHandler() protocol.InitializedFunc {
	return func(context *glsp.Context, params *protocol.InitializedParams) error {
		return nil
	}
}

func shutdownHandler() protocol.ShutdownFunc {
	return func(context *glsp.Context) error {
		return nil
	}
}

func setTraceHandler() protocol.SetTraceFunc {
	return func(context *glsp.Context, params *protocol.SetTraceParams) error {
		return nil
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func ptrTo[T any](v T) *T {
	return &v
}
