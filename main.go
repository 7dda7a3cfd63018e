package main

import "github.com/fakeyudi/tipsfortoday/cmd"

func main() {
	cmd.Execute()
}
