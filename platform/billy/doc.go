// Package billy provides go-billy-backed implementations of platform.Platform.
//
// LocalFS wraps go-billy's osfs and serves the real disk. MemoryFS wraps
// memfs and is the usual backing store for tests and tooling that must not
// touch the disk.
//
// Usage:
//
//	// Local disk, relative names resolve against the process working directory
//	p := billy.NewLocal()
//
//	// In-memory tree with a chosen working directory
//	p := billy.NewMemory(billy.WithWorkingDir("/game"))
//
// # Working directory
//
// Both providers keep their own working directory. SetCurrentDir changes it
// for that provider only, so two providers in one process never interfere.
//
// # Thread Safety
//
// Providers are safe for concurrent use. File handles are not.
package billy
