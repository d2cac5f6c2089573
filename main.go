package main

import "github.com/Divo0/engineering-Program/cmd"

func main() {
	cmd.Execute()
}
