package config

import "github.com/yohamta/donburi/ecs"

// Every fight entity lives on one layer; drivers render from snapshots.
const (
	Default ecs.LayerID = iota
)
