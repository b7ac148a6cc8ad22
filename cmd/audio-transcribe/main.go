package main

import (
	"github.com/marekkowalczyk/audio-transcribe/internal/cli"
)

func main() {
	cli.Execute()
}
