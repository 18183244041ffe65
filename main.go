package main

import "github.com/KaramelBytes/mdtree-cli/cmd"

func main() {
	cmd.Execute()
}
