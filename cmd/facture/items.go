package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the configured item catalog",
	Run: func(cmd *cobra.Command, args []string) {
		items, err := configManager().ListItems()
		if err != nil {
			fatal("Failed to load configuration", err)
		}
		for _, it := range items {
			fmt.Printf("%-12s %-30s %10.2f\n", it.Key, it.Label, it.UnitPrice)
		}
	},
}

// itemsSetCmd represents the items set command
var itemsSetCmd = &cobra.Command{
	Use:   "set <key> <label> <unit-price>",
	Short: "Add or update a catalog item",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fatal("Invalid unit price", err)
		}
		if err := configManager().UpsertItem(args[0], args[1], price); err != nil {
			fatal("Failed to save configuration", err)
		}
		fmt.Printf("Item '%s' saved.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.AddCommand(itemsSetCmd)
}
