package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"equipshare/internal/domain"
)

func init() {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream equipment availability events",
		Long: `Stream equipment availability events

Stays connected and prints a line for every checkout, checkin and
directory change until interrupted.
`,
		RunE: watch,
	}

	RootCmd.AddCommand(watchCmd)
}

func watch(cmd *cobra.Command, args []string) error {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/api/equipment/watch"

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		var evt struct {
			Event     string           `json:"event"`
			Equipment domain.Equipment `json:"equipment"`
		}
		if err := conn.ReadJSON(&evt); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		fmt.Printf("%-8s %d %s (%s)\n",
			strings.ToUpper(evt.Event), evt.Equipment.ID, evt.Equipment.Name,
			domain.StatusString(evt.Equipment.Status))
	}
}
