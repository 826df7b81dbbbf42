package main

import "hunterdb/cmd"

func main() {
	cmd.Execute()
}
