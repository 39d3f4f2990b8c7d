package main

import "github.com/tidepool-org/dka/cmd/dka/command"

func main() {
	command.Execute()
}
