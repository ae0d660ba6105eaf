/*
* Handles reading Git configuration.
 */
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
)

const remoteURLKey = "remote.origin.url"

// Looks up the URL of the "origin" remote in the git config.
//
// A repository without an origin remote is not an error; the returned URL is
// empty.
func RemoteURL() (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error reading remote url: %w", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunConfigGet(ctx, []string{remoteURLKey})
	if err != nil {
		return "", err
	}

	u, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		var subprocessErr cmd.SubprocessErr
		if errors.As(err, &subprocessErr) {
			logger().Debug(
				"failed to get remote url from config or value not present",
				"exitcode",
				subprocessErr.ExitCode,
			)
			return "", nil
		}

		logger().Debug("got unknown error")
		return "", err
	}

	return u, nil
}

// Turns a remote URL into something a browser can open.
//
// SCP-style remotes (git@host:owner/repo.git) become https URLs. Credentials
// embedded in https remotes are dropped. Returns an empty string for remotes
// that have no web equivalent, like local paths.
func BrowsableURL(remote string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return ""
	}

	if !strings.Contains(remote, "://") {
		user, rest, found := strings.Cut(remote, "@")
		if !found {
			rest = user
		}

		host, path, found := strings.Cut(rest, ":")
		if !found || host == "" || strings.HasPrefix(path, "/") {
			return ""
		}

		remote = "https://" + host + "/" + path
	}

	u, err := url.Parse(remote)
	if err != nil || u.Host == "" {
		return ""
	}

	switch u.Scheme {
	case "http", "https":
	case "ssh", "git":
		u.Scheme = "https"
		u.Host = u.Hostname()
	default:
		return ""
	}

	u.User = nil
	u.Path = strings.TrimSuffix(u.Path, ".git")
	return u.String()
}
