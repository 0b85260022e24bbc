package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	companyName    string
	companyAddress string
	companyEmail   string
	companyPhone   string
	companySIRET   string
	companyLogo    string
)

// companyCmd represents the company command
var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show the configured issuing company",
	Run: func(cmd *cobra.Command, args []string) {
		company, err := configManager().Company()
		if err != nil {
			fatal("Failed to load configuration", err)
		}

		fmt.Println(company.Name)
		if company.Address != "" {
			fmt.Println(company.Address)
		}
		if company.Email != "" {
			fmt.Println(company.Email)
		}
		if company.Phone != "" {
			fmt.Println(company.Phone)
		}
		if company.SIRET != "" {
			fmt.Printf("SIRET %s\n", company.SIRET)
		}
		if company.LogoPath != "" {
			fmt.Printf("Logo: %s\n", company.LogoPath)
		}
	},
}

// companySetCmd represents the company set command
var companySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the issuing company",
	Long:  `Update the issuing company in the configuration. Only the given flags change; the rest keeps its current value.`,
	Run: func(cmd *cobra.Command, args []string) {
		mgr := configManager()
		company, err := mgr.Company()
		if err != nil {
			fatal("Failed to load configuration", err)
		}

		if cmd.Flags().Changed("name") {
			company.Name = companyName
		}
		if cmd.Flags().Changed("address") {
			company.Address = companyAddress
		}
		if cmd.Flags().Changed("email") {
			company.Email = companyEmail
		}
		if cmd.Flags().Changed("phone") {
			company.Phone = companyPhone
		}
		if cmd.Flags().Changed("siret") {
			company.SIRET = companySIRET
		}
		if cmd.Flags().Changed("logo") {
			company.LogoPath = companyLogo
		}

		if err := mgr.SetCompany(company); err != nil {
			fatal("Failed to save configuration", err)
		}
		fmt.Println("Company updated.")
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.AddCommand(companySetCmd)
	companySetCmd.Flags().StringVar(&companyName, "name", "", "Company name")
	companySetCmd.Flags().StringVar(&companyAddress, "address", "", "Postal address")
	companySetCmd.Flags().StringVar(&companyEmail, "email", "", "Contact email")
	companySetCmd.Flags().StringVar(&companyPhone, "phone", "", "Contact phone")
	companySetCmd.Flags().StringVar(&companySIRET, "siret", "", "SIRET number")
	companySetCmd.Flags().StringVar(&companyLogo, "logo", "", "Path to the logo image")
}
