// Package platformtest provides a conformance suite for platform.Platform
// providers.
//
// Every provider runs the same suite so the stream and filesystem layers can
// rely on identical handle semantics regardless of the backing store.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    platformtest.TestSuite(t, func(t *testing.T) platform.Platform {
//	        return myprovider.New(t.TempDir())
//	    })
//	}
//
// The factory must return a fresh, empty platform whose working directory is
// writable. All names used by the suite are relative to that directory.
package platformtest

import (
	"testing"

	"github.com/jmgilman/go/resfs/platform"
)

// Factory returns a fresh platform for one test group.
type Factory func(t *testing.T) platform.Platform

// TestSuite runs every conformance group against fresh platforms.
func TestSuite(t *testing.T, newPlatform Factory) {
	t.Run("Handles", func(t *testing.T) {
		TestHandles(t, newPlatform(t))
	})
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newPlatform(t))
	})
	t.Run("Manage", func(t *testing.T) {
		TestManage(t, newPlatform(t))
	})
	t.Run("Dirs", func(t *testing.T) {
		TestDirs(t, newPlatform(t))
	})
}
