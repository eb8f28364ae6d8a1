package main

import "github.com/iksnae/comment-filter/cmd"

func main() {
	cmd.Execute()
}
