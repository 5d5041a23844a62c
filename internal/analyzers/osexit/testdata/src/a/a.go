package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("done")

	if len(os.Args) > 3 {
		os.Exit(1) // want "direct os.Exit call in main function"
	}

	cleanup := func() {
		os.Exit(0)
	}
	_ = cleanup

	helper()
	os.Exit(0) // want "direct os.Exit call in main function"
}
