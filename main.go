package main

import "github.com/KostasZigo/gogitobj/cmd"

func main() {
	cmd.Execute()
}
