package domain

// All distances are in centimeters
type DistanceCounters struct {
	Walk        uint64
	Crouch      uint64
	Sprint      uint64
	Swim        uint64
	Fall        uint64
	Climb       uint64
	Fly         uint64
	Dive        uint64
	WalkOnWater uint64
	Minecart    uint64
	Boat        uint64
	Pig         uint64
	Horse       uint64
	Aviate      uint64
}

func (d DistanceCounters) TotalCM() uint64 {
	return d.Walk +
		d.Crouch +
		d.Sprint +
		d.Swim +
		d.Fall +
		d.Climb +
		d.Fly +
		d.Dive +
		d.WalkOnWater +
		d.Minecart +
		d.Boat +
		d.Pig +
		d.Horse +
		d.Aviate
}

func (d DistanceCounters) Add(other DistanceCounters) DistanceCounters {
	return DistanceCounters{
		Walk:        d.Walk + other.Walk,
		Crouch:      d.Crouch + other.Crouch,
		Sprint:      d.Sprint + other.Sprint,
		Swim:        d.Swim + other.Swim,
		Fall:        d.Fall + other.Fall,
		Climb:       d.Climb + other.Climb,
		Fly:         d.Fly + other.Fly,
		Dive:        d.Dive + other.Dive,
		WalkOnWater: d.WalkOnWater + other.WalkOnWater,
		Minecart:    d.Minecart + other.Minecart,
		Boat:        d.Boat + other.Boat,
		Pig:         d.Pig + other.Pig,
		Horse:       d.Horse + other.Horse,
		Aviate:      d.Aviate + other.Aviate,
	}
}

// Canonical, schema independent counters for a single player
type Counters struct {
	// Game ticks (20 per second)
	PlayTicks       uint64
	GamesLeft       uint64
	Jumps           uint64
	Deaths          uint64
	DamageTaken     uint64
	DamageDealt     uint64
	MobKills        uint64
	PlayerKills     uint64
	CakeSlicesEaten uint64

	Distance DistanceCounters
}

func (c Counters) Add(other Counters) Counters {
	return Counters{
		PlayTicks:       c.PlayTicks + other.PlayTicks,
		GamesLeft:       c.GamesLeft + other.GamesLeft,
		Jumps:           c.Jumps + other.Jumps,
		Deaths:          c.Deaths + other.Deaths,
		DamageTaken:     c.DamageTaken + other.DamageTaken,
		DamageDealt:     c.DamageDealt + other.DamageDealt,
		MobKills:        c.MobKills + other.MobKills,
		PlayerKills:     c.PlayerKills + other.PlayerKills,
		CakeSlicesEaten: c.CakeSlicesEaten + other.CakeSlicesEaten,

		Distance: c.Distance.Add(other.Distance),
	}
}
