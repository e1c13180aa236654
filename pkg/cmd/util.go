package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// getFlag returns an expected bool flag, or exits if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getInt returns an expected int flag, or exits if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getFloat64 returns an expected float64 flag, or exits if an error arises.
func getFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getString returns an expected string flag, or exits if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
