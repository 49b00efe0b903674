package main

import "siteadmin/cmd/console/cmd"

func main() {
	cmd.Execute()
}
