// Package main is the entry point for the phonescan CLI.
package main

// main is the entry point of the application.
func main() {
	Execute()
}
