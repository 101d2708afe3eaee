package main

import "github.com/kunalkt5656/Taskflow/cmd"

func main() {
	cmd.Execute()
}
