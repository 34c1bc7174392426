package main

import "github.com/mouse-blink/solscan/cmd"

func main() {
	cmd.Execute()
}
