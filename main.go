package main

import "totxt/cmd"

func main() {
	cmd.Execute()
}
