package main

import "github.com/campusworks/campus/cmd/campusctl/cmd"

func main() {
	cmd.Execute()
}
