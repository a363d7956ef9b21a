package sim

// Level layout characters:
//
//	S  solid brick (indestructible)
//	B  brick (diggable)
//	L  ladder
//	R  rope
//	C  brick with a gold piece resting on top of it
//	P  player spawn
//	X  enemy spawn
//	E  empty (space works too)
//
// Rows are listed top-first for readability; the parser flips them so row 0
// is the bottom of the world. Characters past column 20 are ignored.
var defaultLayout = [GridHeight]string{
	"SSSSSSSSSSSSSSSSSSSS",
	"SEEEEEEEEEEEEEEEEEES",
	"SCBBCBBLBBBBBLBBCBCS",
	"SLRRRRRLRRRRRLRRRRRS",
	"SL C C L C C L C C LS",
	"SCBBLBBBLELBBBBLBBBS",
	"SRRRRR C L C C RRCRRS",
	"SE E E B L B E E E ES",
	"SBBBEBBBLBLBBBBBBBBS",
	"SC RRRR L L RRRRR CS",
	"SE E E B L B E E E ES",
	"SBCBEBBBLBLBBBEBBEBS",
	"SXXXXXXELPBLXXXXXXBS",
	"SEEEEE B B B EEEEEES",
	"SSSSSSSSSSSSSSSSSSSS",
}

// LevelReport notes the fallbacks applied while parsing a layout, so the
// caller can log a malformed layout instead of failing the load.
type LevelReport struct {
	PlayerFallback bool // No P marker; fixed spawn used
	EnemyFallbacks int  // Enemies placed without an X marker
}

// LoadLevel parses a layout into a grid plus spawn points. A missing
// player marker falls back to a fixed position so a malformed layout
// still loads; enemy spawns cycle through the markers when there are
// fewer markers than enemies. Applied fallbacks are noted in the report.
func LoadLevel(layout [GridHeight]string, maxEnemies int) (*Grid, Cell, []Cell, LevelReport) {
	g := &Grid{}
	playerSpawn := Cell{X: -1, Y: -1}
	var markers []Cell

	for row, line := range layout {
		y := GridHeight - 1 - row
		for x := 0; x < GridWidth && x < len(line); x++ {
			c := Cell{X: x, Y: y}
			switch line[x] {
			case 'S':
				g.tiles[y][x] = SolidBrick
			case 'B':
				g.tiles[y][x] = Brick
			case 'L':
				g.tiles[y][x] = Ladder
			case 'R':
				g.tiles[y][x] = Rope
			case 'C':
				// Gold sits on top of the brick, one cell above; on
				// the top row it shares the brick's cell.
				g.tiles[y][x] = Brick
				goldCell := Cell{X: x, Y: y + 1}
				if !g.InBounds(goldCell) {
					goldCell = c
				}
				if !g.gold[goldCell.Y][goldCell.X] {
					g.gold[goldCell.Y][goldCell.X] = true
					g.goldTotal++
				}
			case 'P':
				g.tiles[y][x] = Empty
				playerSpawn = c
			case 'X':
				g.tiles[y][x] = Empty
				markers = append(markers, c)
			default:
				g.tiles[y][x] = Empty
			}
		}
	}

	var report LevelReport
	if playerSpawn.X < 0 {
		playerSpawn = Cell{X: 1, Y: 3}
		report.PlayerFallback = true
	}
	enemySpawns := make([]Cell, 0, maxEnemies)
	for i := 0; i < maxEnemies; i++ {
		if len(markers) > 0 {
			enemySpawns = append(enemySpawns, markers[i%len(markers)])
		} else {
			enemySpawns = append(enemySpawns, Cell{X: GridWidth - 2 - i, Y: 2})
			report.EnemyFallbacks++
		}
	}
	return g, playerSpawn, enemySpawns, report
}
