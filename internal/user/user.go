// Package user names the person running boardview
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvUser overrides the detected user name
const EnvUser = "BOARDVIEW_USER"

// Name returns who is running the command: BOARDVIEW_USER, then the OS
// account, then $USER, then "unknown"
func Name() string {
	if name := strings.TrimSpace(os.Getenv(EnvUser)); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
