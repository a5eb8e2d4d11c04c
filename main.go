package main

import "github.com/theirongolddev/loanemi/cmd"

func main() {
	cmd.Execute()
}
