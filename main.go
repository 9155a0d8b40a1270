package main

import "github.com/iksnae/legalchat/cmd"

func main() {
	cmd.Execute()
}
