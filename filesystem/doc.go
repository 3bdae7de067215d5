// Package filesystem is the high-level resfs API.
//
// A FileSystem combines a platform (local disk or memory), a root table that
// maps resource categories to directories, and a process runner:
//
//	fsys := filesystem.New(billy.NewLocal())
//	_ = fsys.SetRootPath(roots.Textures, "/srv/assets/textures")
//
//	f, err := fsys.Open("grass.png", roots.Textures, stream.ModeReadBinary)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// Every path handed to or returned from the platform is normalized with
// pathutil, so callers always see '/' separators. Directory queries return
// paths with a trailing slash.
//
// Boolean queries such as FileExists and DirExists never fail; problems are
// logged at debug level and reported as false.
package filesystem
