// Command noisereduce-server runs the HTTP front end for the
// noise-reduction engine: POST /denoise accepts a WAV upload and
// returns the cleaned audio as WAV.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/auleian/noisereduce/internal/httpapi"
)

func main() {
	port := flag.Int("port", 8080, "server port")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "noisereduce-server",
	})

	server := httpapi.New(logger)
	addr := fmt.Sprintf(":%d", *port)

	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, server); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}
