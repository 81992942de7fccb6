package cmd

import (
	"fmt"
	"runtime"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func runVersion() {
	fmt.Printf("studio %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
