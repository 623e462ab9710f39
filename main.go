package main

import "rulescan/cmd"

func main() {
	cmd.Execute()
}
