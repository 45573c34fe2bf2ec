package main

import "example.com/storefront/app/cmd"

func main() {
	cmd.Execute()
}
