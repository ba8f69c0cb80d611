package assets

import "embed"

//go:embed all:levels
var FS embed.FS

// ArenaPath is the default level shipped with the game.
const ArenaPath = "levels/arena.tmx"
