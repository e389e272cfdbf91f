package main

import (
	"fmt"
	"os"

	"evilboard/ui"
)

func main() {
	if err := ui.RunEvilBoard(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
