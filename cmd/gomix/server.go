package main

import (
	"net"

	"go.uber.org/zap"

	"github.com/gomix-k/gomix-k/config"
	"github.com/gomix-k/gomix-k/repl"
)

// startServer is the teacher's TCP REPL server (main/main.go's
// startServer/handleClient) rewired onto a structured logger instead of
// the teacher's colored stdout prints, one goroutine per connection with
// the connection itself serving as both reader and writer for repl.Start.
func startServer(port string, cfg config.Config, logger *zap.SugaredLogger) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}
	defer listener.Close()
	logger.Infow("REPL server listening", "port", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Errorw("accept failed", "error", err)
			continue
		}
		go handleClient(conn, cfg, logger)
	}
}

func handleClient(conn net.Conn, cfg config.Config, logger *zap.SugaredLogger) {
	defer conn.Close()
	logger.Infow("client connected", "remote", conn.RemoteAddr())
	r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt)
	r.Start(conn, conn)
	logger.Infow("client disconnected", "remote", conn.RemoteAddr())
}
