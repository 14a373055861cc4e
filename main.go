package main

import "glaciertk/cmd"

func main() {
	cmd.Execute()
}
