package main

import (
	"net"
	"os"

	"github.com/drblallo/odl/internal/server"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	glspServer "github.com/tliron/glsp/server"
)

const (
	name    = "odl-lsp"
	version = "0.1.0"

	address = "127.0.0.1:9257"
)

// With no argument, the client is assumed to have already opened the TCP
// port and is waiting for us to connect (the vscode-languageclient
// pattern). With --listen, the roles are reversed: we bind and wait for
// the client to connect.
func main() {
	commonlog.Configure(1, nil)

	var conn net.Conn
	var err error

	switch {
	case len(os.Args) < 2:
		conn, err = net.Dial("tcp", address)
	case os.Args[1] == "--listen":
		listener, lerr := net.Listen("tcp", address)
		if lerr != nil {
			panic(lerr)
		}
		conn, err = listener.Accept()
	default:
		panic("Unrecognized argument: " + os.Args[1] + ". Use --listen to listen for connections.")
	}
	if err != nil {
		panic(err)
	}

	handler, _ := server.NewHandler(name, version)

	s := glspServer.NewServer(handler, name, false)

	// conn already satisfies io.ReadWriteCloser; feed it straight into the
	// generic stream entry point in place of RunStdio's os.Stdin/os.Stdout.
	s.RunStream(conn)
}
