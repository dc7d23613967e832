package main

import (
	"os"
)

func main() {
	root, closeApp := newRootCmd(openApp)
	err := root.Execute()
	if cerr := closeApp(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
