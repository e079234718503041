package main

import "github.com/rawbytedev/binwire/cmd/bindump/cmd"

func main() {
	cmd.Execute()
}
