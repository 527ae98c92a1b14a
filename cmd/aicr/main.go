package main

import (
	"os"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
