// Package session resolves who is playing so finished runs can be
// attributed in the runs database, both for local terminals and SSH
// connections.
package session

import (
	"os"
	"os/user"
	"strings"
)

// maxNameLen caps stored player names so arbitrary SSH usernames stay
// presentable in scoreboards.
const maxNameLen = 32

// Identity describes the player behind the current terminal.
type Identity struct {
	Name   string
	Remote bool // connected over SSH
}

// Anonymous returns an identity with no name. Runs saved under it show
// up without a player column.
func Anonymous() Identity {
	return Identity{}
}

// Local resolves the identity of the local terminal user from $USER,
// falling back to the OS account name.
func Local() Identity {
	name := os.Getenv("USER")
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	return Identity{Name: CleanName(name)}
}

// Remote builds an identity for a player connected over SSH.
func Remote(username string) Identity {
	return Identity{Name: CleanName(username), Remote: true}
}

// Display returns the name to show in HUDs and tables, or "player"
// when the identity is anonymous.
func (id Identity) Display() string {
	if id.Name == "" {
		return "player"
	}
	return id.Name
}

// CleanName strips control characters, trims whitespace, and caps the
// length. SSH clients can send any bytes as the username.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if b.Len() >= maxNameLen {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
