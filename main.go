package main

import "github.com/Kheene145/ML-coursework/cmd"

func main() {
	cmd.Execute()
}
