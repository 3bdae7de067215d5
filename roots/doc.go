// Package roots maps resource categories to base directories.
//
// A Table holds a default directory for every registered category and an
// optional run-time override per category. Resolution checks the override
// first, then the default:
//
//	t := roots.New()
//	_ = t.SetRootPath(roots.Textures, "/srv/assets/tex")
//	p, _ := t.FixPath("grass.png", roots.Textures) // "/srv/assets/tex/grass.png"
//
//	t.ClearModifiedRootPaths()
//	p, _ = t.FixPath("grass.png", roots.Textures) // "Textures/grass.png"
//
// Libraries add their own categories with Register instead of relying on a
// fixed set of slots:
//
//	_ = t.Register("terrain-heightmaps", "../Terrain/Heightmaps/")
//
// Root layouts can also be loaded from YAML with ParseConfig or LoadConfig
// and installed with Config.Apply.
package roots
