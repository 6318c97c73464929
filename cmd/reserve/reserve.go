package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"equipshare/internal/client"
)

var RootCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Check shared equipment in and out",
	Long: `Check shared equipment in and out

environment:
    EQUIPSHARE_URL    URL for the equipment service
                      EQUIPSHARE_URL_VALUE
    EQUIPSHARE_TOKEN  bearer token from 'reserve login'
`,
	PersistentPreRunE: setup,
}

var (
	serviceURL string
	token      string
	api        *client.Client
)

func setup(cmd *cobra.Command, args []string) error {
	if serviceURL == "" {
		return errors.New("service URL not set")
	}

	var err error
	api, err = client.New(serviceURL, client.WithToken(token))
	return err
}

func main() {
	addr := os.Getenv("EQUIPSHARE_URL")
	if addr == "" {
		addr = "http://localhost:8080"
	}
	tok := os.Getenv("EQUIPSHARE_TOKEN")

	RootCmd.Long = strings.ReplaceAll(RootCmd.Long, "EQUIPSHARE_URL_VALUE", addr)

	RootCmd.PersistentFlags().StringVar(&serviceURL, "url", addr, "URL for the equipment service")
	RootCmd.PersistentFlags().StringVar(&token, "token", tok, "bearer token")

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
