package main

import "github.com/TonyNguyenVn17/files-organizor/cmd"

func main() {
	cmd.Execute()
}
