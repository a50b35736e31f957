package main

import "dkv2_import/cmd"

func main() {
	cmd.Execute()
}
