//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of chance-encounter requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/encounter` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless estimates use `go run ./cmd/encounter-sweep`.")
	os.Exit(2)
}
