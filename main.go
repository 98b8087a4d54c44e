package main

import "github.com/fkoehler/znuny-ticket-cli/cmd"

func main() {
	cmd.Execute()
}
