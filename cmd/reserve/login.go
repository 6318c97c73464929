package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	loginCmd := &cobra.Command{
		Use:   "login <pid>",
		Short: "Obtain a bearer token",
		Long: `Obtain a bearer token

Prompts for the account password and prints the token. Export it as
EQUIPSHARE_TOKEN, or pass it with --token on later commands.
`,
		Args: cobra.ExactArgs(1),
		RunE: login,
	}

	RootCmd.AddCommand(loginCmd)
}

func login(cmd *cobra.Command, args []string) error {
	pid, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("pid must be an integer: %v", err)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return err
	}

	result, err := api.Login(cmd.Context(), pid, strings.TrimRight(line, "\r\n"))
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "logged in as %s\n", result.Role)
	fmt.Println(result.Token)
	return nil
}
