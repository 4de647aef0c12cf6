package main

import "github.com/indiekitai/env-audit/cmd/envaudit"

func main() {
	envaudit.Execute()
}
