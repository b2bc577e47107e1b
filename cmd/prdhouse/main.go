package main

import "github.com/prdhouse/prdhouse/cmd/prdhouse/cmd"

func main() {
	cmd.Execute()
}
