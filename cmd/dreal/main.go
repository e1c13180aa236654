package main

import "github.com/dreal-go/dreal/pkg/cmd"

func main() {
	cmd.Execute()
}
