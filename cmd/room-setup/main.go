// Command room-setup creates a room on a running room-server through an
// interactive prompt.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultServerURL = "http://localhost:3536"

func main() {
	serverURL := os.Getenv("ROOM_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	client := newRoomClient(serverURL, os.Getenv("LANGUAGE_CODE"))
	p := tea.NewProgram(initialModel(client))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
