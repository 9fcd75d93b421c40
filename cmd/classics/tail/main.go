package main

import (
	"os"

	"github.com/midbel/classics"
)

func main() {
	os.Exit(classics.Exec("tail", os.Args[1:]))
}
