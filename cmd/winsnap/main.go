package main

import "github.com/bryanchriswhite/winsnap/cmd/winsnap/commands"

func main() {
	commands.Execute()
}
