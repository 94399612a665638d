package main

import "github.com/jsphweid/patterndex/cmd"

func main() {
	cmd.Execute()
}
