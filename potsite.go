package main

import "github.com/cnopslabs/potsite/cmd"

func main() {
	cmd.Execute()
}
