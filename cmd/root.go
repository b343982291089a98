/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oas2graph",
	Short: "Preprocess OpenAPI specifications into a GraphQL-style type model",
	Long: `oas2graph transforms a REST API description (OpenAPI) into a normalized
intermediate model for generating a schema-typed API surface.

It extracts every operation, deduplicates structurally identical payload
schemas into shared named type definitions, normalizes security schemes,
and derives sub-operation relationships between nested endpoints.`,
}

func Execute() {
	cobra.OnInitialize(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("Error reading config file: %v", err)
			}
		}
	})
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
