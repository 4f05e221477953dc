package main

import "github.com/stencildev/stencil/cmd"

func main() {
	cmd.Execute()
}
