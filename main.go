package main

import (
	"fmt"
	"os"
	"strings"

	"inkpress/service"
)

// CliVersion is the version reported by the version command.
const CliVersion = "1.0.0"

// exit is replaced in tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args to the matching command and exits with its code.
func RealMain() {
	if len(os.Args) < 2 {
		service.PrintHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "version":
		fmt.Printf("inkpress version %s\n", CliVersion)
		exit(0)
	default:
		exit(service.HandleCommand(append([]string{cmd}, os.Args[2:]...)))
	}
}
