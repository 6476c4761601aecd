package main

import "github.com/restevesd/arnes/internal/cli"

// @title Boot Size Advisor API
// @version 1.0
// @description Checks a dog boot size against the size estimated from the dog's harness measurement.
// @BasePath /
func main() {
	cli.Execute()
}
