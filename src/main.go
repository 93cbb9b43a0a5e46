package main

import "go-zeropool-dictionary/cmd"

func main() {
	cmd.Execute()
}
