package main

import "github.com/lizergic/Transcribe-Tool/internal/adapters/cli"

func main() {
	cli.Execute()
}
