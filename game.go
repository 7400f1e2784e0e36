package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neon-dungeon/config"
	"neon-dungeon/generation"
	"neon-dungeon/grid"
	"neon-dungeon/random"
	"neon-dungeon/spawners"
	"neon-dungeon/systems"
)

// probeSpeed is how far the probe moves per tick, in world units.
const probeSpeed = 2.0

var (
	colorWall     = color.RGBA{8, 8, 20, 255}
	colorFloor    = color.RGBA{40, 40, 70, 255}
	colorRoomEdge = color.RGBA{0, 200, 255, 255}
	colorLight    = color.RGBA{180, 180, 180, 90}
	colorProbe    = color.RGBA{255, 255, 255, 255}
)

// movementKeys maps held keys to probe directions
var movementKeys = map[ebiten.Key]int{
	ebiten.KeyArrowUp:    systems.DirUp,
	ebiten.KeyArrowDown:  systems.DirDown,
	ebiten.KeyArrowLeft:  systems.DirLeft,
	ebiten.KeyArrowRight: systems.DirRight,
	ebiten.KeyW:          systems.DirUp,
	ebiten.KeyS:          systems.DirDown,
	ebiten.KeyA:          systems.DirLeft,
	ebiten.KeyD:          systems.DirRight,
}

var spawnColors = map[spawners.Kind]color.RGBA{
	spawners.KindExit:  {0, 255, 120, 255},
	spawners.KindGem:   {255, 0, 255, 255},
	spawners.KindHeart: {255, 60, 60, 255},
	spawners.KindEnemy: {255, 200, 0, 255},
}

// Game implements ebiten.Game interface.
type Game struct {
	ctx        context.Context
	dungeonCfg config.DungeonConfig
	viewerCfg  config.ViewerConfig

	seed     int64
	dungeon  *generation.DungeonMap
	spawns   []spawners.Spawn
	mapImage *ebiten.Image
	whiteImg *ebiten.Image

	probe    systems.Point
	movement *systems.MovementSystem
	cone     *systems.LightCone
	messages *systems.MessageLog

	screenWidth  int
	screenHeight int
}

// NewGame creates a viewer showing the dungeon generated from seed
func NewGame(ctx context.Context, dungeonCfg config.DungeonConfig, viewerCfg config.ViewerConfig, seed int64) (*Game, error) {
	width, height := viewerCfg.GetWindowSize()

	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	g := &Game{
		ctx:          ctx,
		dungeonCfg:   dungeonCfg,
		viewerCfg:    viewerCfg,
		whiteImg:     whiteImg,
		movement:     systems.NewMovementSystem(config.ProbeRadius, probeSpeed),
		cone:         systems.NewDefaultLightCone(),
		messages:     systems.NewMessageLog(100),
		screenWidth:  width,
		screenHeight: height,
	}

	if err := g.regenerate(seed); err != nil {
		return nil, err
	}

	g.messages.Add("Arrow keys move, R regenerates, Esc quits.")
	return g, nil
}

// regenerate swaps in a new dungeon built from seed. The old map is kept if
// generation fails.
func (g *Game) regenerate(seed int64) error {
	rng := random.NewSeeded(seed)

	dungeon, err := generation.Generate(g.ctx, g.dungeonCfg, rng)
	if err != nil {
		return fmt.Errorf("generate dungeon: %w", err)
	}

	placer := spawners.NewPlacer(dungeon, rng, nil)
	spawns, err := placer.Populate(g.viewerCfg.Gems, g.viewerCfg.Hearts, g.viewerCfg.Enemies)
	if err != nil {
		g.messages.Add(fmt.Sprintf("Placement stopped early: %v", err))
	}

	g.seed = seed
	g.dungeon = dungeon
	g.spawns = spawns
	g.mapImage = renderTiles(dungeon.Grid())

	start := placer.PlaceStart()
	g.probe = systems.Point{X: start.X, Y: start.Y}
	g.cone.Recast(dungeon, g.probe.X, g.probe.Y)

	rooms := len(dungeon.Rooms())
	log.Printf("generated dungeon: %d rooms, seed %d", rooms, seed)
	g.messages.Add(fmt.Sprintf("Seed %d: %d rooms, %d/%d reachable", seed, rooms, dungeon.ReachableRooms(), rooms))
	return nil
}

// renderTiles draws the grid one pixel per tile.
func renderTiles(tiles *grid.TileGrid) *ebiten.Image {
	pixels := make([]byte, 4*tiles.Width*tiles.Height)
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			c := colorWall
			if tiles.At(x, y) == grid.TileWalkable {
				c = colorFloor
			}
			i := 4 * (y*tiles.Width + x)
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = c.R, c.G, c.B, c.A
		}
	}

	img := ebiten.NewImage(tiles.Width, tiles.Height)
	img.WritePixels(pixels)
	return img
}

// Update updates the viewer state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		seed, err := random.NewSeed()
		if err != nil {
			g.messages.Add("Error picking seed: " + err.Error())
		} else if err := g.regenerate(seed); err != nil {
			g.messages.Add("Error: " + err.Error())
		}
	}

	var dirs []int
	for key, dir := range movementKeys {
		if ebiten.IsKeyPressed(key) {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) > 0 {
		g.probe = g.movement.Move(g.dungeon, g.probe, dirs...)
	}

	g.cone.Update(g.dungeon, g.probe.X, g.probe.Y)
	return nil
}

// scale returns the world-to-screen factor that fits the whole map.
func (g *Game) scale() float64 {
	return math.Min(float64(g.screenWidth)/g.dungeonCfg.WorldWidth,
		float64(g.screenHeight)/g.dungeonCfg.WorldHeight)
}

// Draw draws the map, the light cone and the spawn markers.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorWall)
	s := g.scale()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s*g.dungeonCfg.TileSize, s*g.dungeonCfg.TileSize)
	screen.DrawImage(g.mapImage, op)

	ts := float32(s * g.dungeonCfg.TileSize)
	for _, room := range g.dungeon.Rooms() {
		vector.StrokeRect(screen, float32(room.X)*ts, float32(room.Y)*ts,
			float32(room.W)*ts, float32(room.H)*ts, 1, colorRoomEdge, false)
	}

	g.drawLightCone(screen, s)

	for _, spawn := range g.spawns {
		c, ok := spawnColors[spawn.Kind]
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(spawn.X*s), float32(spawn.Y*s), 2, c, true)
	}

	px, py := float32(g.probe.X*s), float32(g.probe.Y*s)
	vector.DrawFilledCircle(screen, px, py, float32(math.Max(config.ProbeRadius*s, 2)), colorProbe, true)

	status := fmt.Sprintf("seed %d  probe (%.0f, %.0f)\n", g.seed, g.probe.X, g.probe.Y)
	for _, msg := range g.messages.RecentMessages(3) {
		status += msg + "\n"
	}
	ebitenutil.DebugPrint(screen, status)
}

// drawLightCone fills the cone polygon around the probe.
func (g *Game) drawLightCone(screen *ebiten.Image, s float64) {
	rim := g.cone.Polygon()
	if len(rim) < 2 {
		return
	}
	origin := g.cone.Origin()

	path := vector.Path{}
	path.MoveTo(float32(origin.X*s), float32(origin.Y*s))
	for _, p := range rim {
		path.LineTo(float32(p.X*s), float32(p.Y*s))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 0, 0
		vertices[i].ColorR = float32(colorLight.R) / 255
		vertices[i].ColorG = float32(colorLight.G) / 255
		vertices[i].ColorB = float32(colorLight.B) / 255
		vertices[i].ColorA = float32(colorLight.A) / 255
	}
	screen.DrawTriangles(vertices, indices, g.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
