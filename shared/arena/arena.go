// Package arena parses fight stage geometry from Tiled maps. It has no
// dependencies on ebitengine, donburi, or resolv, so headless tools can load it.
package arena

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Spawn is a round-start position for one side.
type Spawn struct {
	X, Y   float64
	Facing int
}

// Arena is the playfield the fighters are confined to.
type Arena struct {
	Name    string
	Width   float64
	Height  float64
	GroundY float64 // feet rest here
	MinX    float64 // fighter x clamp
	MaxX    float64
	Spawns  [2]Spawn
}

const objectGroup = "Arena"

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	a.MaxX = a.Width

	var haveGround bool
	var spawns int
	for _, og := range m.ObjectGroups {
		if og.Name != objectGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "bounds":
				a.Width, a.Height = o.Width, o.Height
			case "ground":
				a.GroundY = o.Y
				haveGround = true
			case "walls":
				a.MinX, a.MaxX = o.X, o.X+o.Width
			case "spawn":
				side := o.Properties.GetInt("side")
				if side < 0 || side > 1 {
					return nil, fmt.Errorf("%s: spawn side %d out of range", tmxPath, side)
				}
				facing := o.Properties.GetInt("facing")
				if facing == 0 {
					facing = 1 - 2*side
				}
				a.Spawns[side] = Spawn{X: o.X, Y: o.Y, Facing: facing}
				spawns++
			}
		}
	}

	if !haveGround {
		return nil, fmt.Errorf("%s: no ground object in %q group", tmxPath, objectGroup)
	}
	if spawns < 2 {
		return nil, fmt.Errorf("%s: need 2 spawn objects, found %d", tmxPath, spawns)
	}
	if a.MinX >= a.MaxX {
		return nil, fmt.Errorf("%s: empty wall span [%.0f, %.0f]", tmxPath, a.MinX, a.MaxX)
	}
	return a, nil
}

//go:embed dojo.tmx
var builtin embed.FS

// Default returns the built-in dojo stage.
func Default() *Arena {
	a, err := Load(builtin, "dojo.tmx")
	if err != nil {
		panic(err)
	}
	return a
}

// Clamp keeps x inside the walls.
func (a *Arena) Clamp(x float64) float64 {
	if x < a.MinX {
		return a.MinX
	}
	if x > a.MaxX {
		return a.MaxX
	}
	return x
}
