package entity

// Listener receives a devil's state changes. Callbacks run synchronously on the
// update goroutine.
type Listener interface {
	HealthChanged(d *Devil, health, maxHealth int)
	Attacked(d *Devil, damage int)
	Defeated(d *Devil)
}

// SpawnListener is told when the Spawner puts a new devil into play
type SpawnListener interface {
	Spawned(d *Devil)
}

// ListenerFuncs adapts plain functions to Listener and SpawnListener. Nil fields are skipped.
type ListenerFuncs struct {
	OnHealthChanged func(d *Devil, health, maxHealth int)
	OnAttacked      func(d *Devil, damage int)
	OnDefeated      func(d *Devil)
	OnSpawned       func(d *Devil)
}

func (f ListenerFuncs) HealthChanged(d *Devil, health, maxHealth int) {
	if f.OnHealthChanged != nil {
		f.OnHealthChanged(d, health, maxHealth)
	}
}

func (f ListenerFuncs) Attacked(d *Devil, damage int) {
	if f.OnAttacked != nil {
		f.OnAttacked(d, damage)
	}
}

func (f ListenerFuncs) Defeated(d *Devil) {
	if f.OnDefeated != nil {
		f.OnDefeated(d)
	}
}

func (f ListenerFuncs) Spawned(d *Devil) {
	if f.OnSpawned != nil {
		f.OnSpawned(d)
	}
}
