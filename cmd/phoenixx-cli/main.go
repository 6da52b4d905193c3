package main

import "github.com/sparktechagency/phoenixx-cli/internal/cmd"

func main() {
	cmd.Execute()
}
