// Package lockfile implements the single-writer discipline: one jadwalin
// process per store. The lock is advisory; a second process gets a warning,
// not a hard failure, because the store itself offers no locking.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/jeanfide/jadwalin/internal/constants"
)

var findProcessFunc = ps.FindProcess

// Path returns the lock location for a store config path. Non-filesystem
// stores (PostgreSQL) fall back to the user config directory.
func Path(configPath string) string {
	dir := filepath.Dir(configPath)
	if dir == "." || dir == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(configDir, constants.AppName)
		} else {
			dir = os.TempDir()
		}
	}
	return filepath.Join(dir, constants.LockfileName)
}

// Holder returns the pid recorded in the lockfile and whether that process
// is still alive. A missing or malformed lockfile reports no holder.
func Holder(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	proc, err := findProcessFunc(pid)
	if err != nil || proc == nil {
		return pid, false
	}
	return pid, true
}

// Acquire records the current pid in the lockfile and returns a release
// function. If another live process already holds the lock, Acquire returns
// its pid in the error and leaves the lockfile alone.
func Acquire(path string) (func(), error) {
	if pid, alive := Holder(path); alive && pid != os.Getpid() {
		return nil, fmt.Errorf("another %s process (pid %d) is using this store", constants.AppName, pid)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		return nil, err
	}
	return func() { _ = os.Remove(path) }, nil
}
