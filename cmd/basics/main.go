// Command basics prints the Go basics lesson to standard output.
package main

import (
	"log"
	"os"

	"github.com/go-delve/mcp-basics/tutorial"
)

func main() {
	if err := tutorial.Run(os.Stdout, tutorial.Default()); err != nil {
		log.Fatalf("Failed to write lesson: %v", err)
	}
}
