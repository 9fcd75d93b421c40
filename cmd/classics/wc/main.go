package main

import (
	"os"

	"github.com/midbel/classics"
)

func main() {
	os.Exit(classics.Exec("wc", os.Args[1:]))
}
