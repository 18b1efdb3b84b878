package main

import "github.com/oersearch/oersearch/cmd"

func main() {
	cmd.Execute()
}
