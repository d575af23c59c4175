package main

import "github.com/chrisdamba/nutriplan/cmd"

func main() {
	cmd.Execute()
}
