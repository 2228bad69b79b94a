package main

import "github.com/Mohsinsiddi/catsale/cmd"

func main() {
	cmd.Execute()
}
