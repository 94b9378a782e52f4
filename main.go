package main

import "gitprobe/cmd"

func main() {
	cmd.Execute()
}
