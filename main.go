/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/moamenhredeen/oas2graph/cmd"

func main() {
	cmd.Execute()
}
