package main

import "github.com/tidepool-org/dka/api"

func main() {
	api.MainLoop()
}
