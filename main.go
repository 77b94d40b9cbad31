package main

import "chain-sync/cmd"

func main() {
	cmd.Execute()
}
