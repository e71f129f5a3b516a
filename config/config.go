// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/siemens/remoteping/types"

	"github.com/joho/godotenv"
	"github.com/thediveo/lxkns/log"
)

// ServerURLEnv is the name of the environment variable specifying the base URL
// of the ping server.
const ServerURLEnv = "PING_SERVER_URL"

// DefaultDotEnv is the dotenv file loaded by LoadDotEnv when not passed any
// explicit file names.
const DefaultDotEnv = ".env"

// ServerURL is the base URL of a ping server, without any trailing slash.
type ServerURL string

// String returns the server URL as a string.
func (u ServerURL) String() string { return string(u) }

// Resolve returns the ping server URL as configured in the environment at the
// time of the call. It returns a [types.ConfigError] if the environment
// variable is missing or empty, or if its value isn't an absolute http(s) URL.
func Resolve() (ServerURL, error) {
	return Parse(os.Getenv(ServerURLEnv))
}

// Parse checks the specified base URL and returns it in normalized form, that
// is, without a trailing slash.
func Parse(raw string) (ServerURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &types.ConfigError{Variable: ServerURLEnv}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", &types.ConfigError{Variable: ServerURLEnv, Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &types.ConfigError{
			Variable: ServerURLEnv,
			Reason:   fmt.Sprintf("unsupported scheme %q in %q", u.Scheme, raw),
		}
	}
	if u.Host == "" {
		return "", &types.ConfigError{
			Variable: ServerURLEnv,
			Reason:   fmt.Sprintf("missing host in %q", raw),
		}
	}
	return ServerURL(strings.TrimRight(raw, "/")), nil
}

// LoadDotEnv loads environment variables from the specified dotenv files,
// without overriding any variables already present in the environment. If no
// files are specified, LoadDotEnv loads DefaultDotEnv if it exists; its absence
// isn't an error. Explicitly specified files must exist.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		err := godotenv.Load(DefaultDotEnv)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no %s file, skipping", DefaultDotEnv)
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot load %s: %w", DefaultDotEnv, err)
		}
		log.Debugf("loaded environment from %s", DefaultDotEnv)
		return nil
	}
	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("cannot load dotenv files %v: %w", filenames, err)
	}
	log.Debugf("loaded environment from %v", filenames)
	return nil
}
