package main

import "github.com/linchen228/paydispute-client/cmd"

func main() {
	cmd.Execute()
}
