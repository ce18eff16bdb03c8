package alchemist

// Snapshot captures the observable state of a run. Tests compare them for
// determinism and a stopped run logs one at debug level.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Level     int
	Title     string
	Score     int
	Target    int
	Potions   int
	PlayerX   float64
	PlayerY   float64
	Alive     bool
	Enemies   int
	Items     int
	Particles int
	Armed     bool
	Killed    bool
	FinalWin  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Status:    g.status,
		Potions:   g.Potions(),
		Enemies:   g.set.LiveEnemies(),
		Items:     g.set.LiveItems(),
		Particles: len(g.set.Particles),
		Killed:    g.killed,
		FinalWin:  g.finalWin,
	}
	if g.current != nil {
		s.Level = g.current.Ordinal
		s.Title = g.current.Title
		s.Score = g.current.Score.Value
		s.Target = g.current.Score.Target
	}
	if p := g.set.Player; p != nil {
		s.PlayerX = p.Pos().X
		s.PlayerY = p.Pos().Y
		s.Alive = p.Alive()
	}
	if w := g.set.Weapon; w != nil {
		s.Armed = w.Active
	}
	return s
}
