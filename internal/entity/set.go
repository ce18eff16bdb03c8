package entity

// Set is the collection of live entities of one arena. Spawns and removals
// requested during a tick are staged and applied by Sweep at the end of it,
// so every resolver in the tick sees the same population.
type Set struct {
	Player    *Player
	Weapon    *Weapon
	Enemies   []*Enemy
	Items     []*Item
	Particles []*Particle

	newEnemies   []*Enemy
	newItems     []*Item
	newParticles []*Particle
}

// AddEnemy stages an enemy.
func (s *Set) AddEnemy(e *Enemy) {
	s.newEnemies = append(s.newEnemies, e)
}

// AddItem stages a potion.
func (s *Set) AddItem(i *Item) {
	s.newItems = append(s.newItems, i)
}

// AddParticles stages fragments.
func (s *Set) AddParticles(ps []*Particle) {
	s.newParticles = append(s.newParticles, ps...)
}

// Sweep drops dead entities and admits the staged ones.
func (s *Set) Sweep() {
	s.Enemies = append(keepAlive(s.Enemies), keepAlive(s.newEnemies)...)
	s.Items = append(keepAlive(s.Items), keepAlive(s.newItems)...)
	s.Particles = append(keepAlive(s.Particles), keepAlive(s.newParticles)...)
	s.newEnemies = s.newEnemies[:0]
	s.newItems = s.newItems[:0]
	s.newParticles = s.newParticles[:0]
}

// Clear discards every entity, staged ones included.
func (s *Set) Clear() {
	*s = Set{}
}

// LiveEnemies counts enemies still alive, staged ones included.
func (s *Set) LiveEnemies() int {
	return countAlive(s.Enemies) + countAlive(s.newEnemies)
}

// LiveItems counts potions still in play, staged ones included.
func (s *Set) LiveItems() int {
	return countAlive(s.Items) + countAlive(s.newItems)
}

// Each visits every entity in draw order: potions, enemies, the player,
// the sword, then particles.
func (s *Set) Each(fn func(Entity)) {
	for _, i := range s.Items {
		fn(i)
	}
	for _, e := range s.Enemies {
		fn(e)
	}
	if s.Player != nil {
		fn(s.Player)
	}
	if s.Weapon != nil {
		fn(s.Weapon)
	}
	for _, p := range s.Particles {
		fn(p)
	}
}

func keepAlive[T Entity](list []T) []T {
	out := list[:0]
	for _, e := range list {
		if e.Alive() {
			out = append(out, e)
		}
	}
	clear(list[len(out):])
	return out
}

func countAlive[T Entity](list []T) int {
	n := 0
	for _, e := range list {
		if e.Alive() {
			n++
		}
	}
	return n
}

// EachStagedEnemy visits enemies added this tick that Sweep has not
// admitted yet.
func (s *Set) EachStagedEnemy(fn func(*Enemy)) {
	for _, e := range s.newEnemies {
		fn(e)
	}
}
