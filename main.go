package main

import "curlhunter/cmd"

func main() {
	cmd.Execute()
}
