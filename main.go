package main

import "github.com/sakinahapp/sakinah/cmd"

func main() {
	cmd.Execute()
}
