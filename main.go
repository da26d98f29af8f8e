package main

import "github.com/Rorical/RoriFactor/cmd"

func main() {
	cmd.Execute()
}
