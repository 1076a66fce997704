package main

import (
	"os"

	"github.com/Jerry809/curl-to-csharp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
