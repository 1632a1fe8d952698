package main

import "github.com/arl/meetpoint/cmd/nav-analysis/cmd"

func main() {
	cmd.Execute()
}
