package statsfile

import (
	"encoding/json"
	"fmt"

	"github.com/Amund211/wikistats/internal/domain"
)

// Flat, dot separated keys used before the 1.13 flattening
type oldFormatStats struct {
	PlayOneMinute   *uint64 `json:"stat.playOneMinute,omitempty"`
	LeaveGame       *uint64 `json:"stat.leaveGame,omitempty"`
	Jump            *uint64 `json:"stat.jump,omitempty"`
	Deaths          *uint64 `json:"stat.deaths,omitempty"`
	DamageTaken     *uint64 `json:"stat.damageTaken,omitempty"`
	DamageDealt     *uint64 `json:"stat.damageDealt,omitempty"`
	MobKills        *uint64 `json:"stat.mobKills,omitempty"`
	PlayerKills     *uint64 `json:"stat.playerKills,omitempty"`
	CakeSlicesEaten *uint64 `json:"stat.cakeSlicesEaten,omitempty"`

	WalkOneCm     *uint64 `json:"stat.walkOneCm,omitempty"`
	CrouchOneCm   *uint64 `json:"stat.crouchOneCm,omitempty"`
	SprintOneCm   *uint64 `json:"stat.sprintOneCm,omitempty"`
	SwimOneCm     *uint64 `json:"stat.swimOneCm,omitempty"`
	FallOneCm     *uint64 `json:"stat.fallOneCm,omitempty"`
	ClimbOneCm    *uint64 `json:"stat.climbOneCm,omitempty"`
	FlyOneCm      *uint64 `json:"stat.flyOneCm,omitempty"`
	DiveOneCm     *uint64 `json:"stat.diveOneCm,omitempty"`
	MinecartOneCm *uint64 `json:"stat.minecartOneCm,omitempty"`
	BoatOneCm     *uint64 `json:"stat.boatOneCm,omitempty"`
	PigOneCm      *uint64 `json:"stat.pigOneCm,omitempty"`
	HorseOneCm    *uint64 `json:"stat.horseOneCm,omitempty"`
	AviateOneCm   *uint64 `json:"stat.aviateOneCm,omitempty"`
}

// Nested, namespaced keys used from 1.13 onwards
type newFormatStats struct {
	Stats *newFormatCategories `json:"stats,omitempty"`
}

type newFormatCategories struct {
	Custom *newFormatCustomStats `json:"minecraft:custom,omitempty"`
}

type newFormatCustomStats struct {
	PlayOneMinute *uint64 `json:"minecraft:play_one_minute,omitempty"`
	LeaveGame     *uint64 `json:"minecraft:leave_game,omitempty"`
	Jump          *uint64 `json:"minecraft:jump,omitempty"`
	Deaths        *uint64 `json:"minecraft:deaths,omitempty"`
	DamageTaken   *uint64 `json:"minecraft:damage_taken,omitempty"`
	DamageDealt   *uint64 `json:"minecraft:damage_dealt,omitempty"`
	MobKills      *uint64 `json:"minecraft:mob_kills,omitempty"`
	PlayerKills   *uint64 `json:"minecraft:player_kills,omitempty"`
	EatCakeSlice  *uint64 `json:"minecraft:eat_cake_slice,omitempty"`

	WalkOneCm        *uint64 `json:"minecraft:walk_one_cm,omitempty"`
	CrouchOneCm      *uint64 `json:"minecraft:crouch_one_cm,omitempty"`
	SprintOneCm      *uint64 `json:"minecraft:sprint_one_cm,omitempty"`
	SwimOneCm        *uint64 `json:"minecraft:swim_one_cm,omitempty"`
	FallOneCm        *uint64 `json:"minecraft:fall_one_cm,omitempty"`
	ClimbOneCm       *uint64 `json:"minecraft:climb_one_cm,omitempty"`
	FlyOneCm         *uint64 `json:"minecraft:fly_one_cm,omitempty"`
	WalkOnWaterOneCm *uint64 `json:"minecraft:walk_on_water_one_cm,omitempty"`
	MinecartOneCm    *uint64 `json:"minecraft:minecart_one_cm,omitempty"`
	BoatOneCm        *uint64 `json:"minecraft:boat_one_cm,omitempty"`
	PigOneCm         *uint64 `json:"minecraft:pig_one_cm,omitempty"`
	HorseOneCm       *uint64 `json:"minecraft:horse_one_cm,omitempty"`
	AviateOneCm      *uint64 `json:"minecraft:aviate_one_cm,omitempty"`
}

func valueOrZero(value *uint64) uint64 {
	if value == nil {
		return 0
	}
	return *value
}

func (s *oldFormatStats) toCounters() domain.Counters {
	return domain.Counters{
		PlayTicks:       valueOrZero(s.PlayOneMinute),
		GamesLeft:       valueOrZero(s.LeaveGame),
		Jumps:           valueOrZero(s.Jump),
		Deaths:          valueOrZero(s.Deaths),
		DamageTaken:     valueOrZero(s.DamageTaken),
		DamageDealt:     valueOrZero(s.DamageDealt),
		MobKills:        valueOrZero(s.MobKills),
		PlayerKills:     valueOrZero(s.PlayerKills),
		CakeSlicesEaten: valueOrZero(s.CakeSlicesEaten),

		Distance: domain.DistanceCounters{
			Walk:     valueOrZero(s.WalkOneCm),
			Crouch:   valueOrZero(s.CrouchOneCm),
			Sprint:   valueOrZero(s.SprintOneCm),
			Swim:     valueOrZero(s.SwimOneCm),
			Fall:     valueOrZero(s.FallOneCm),
			Climb:    valueOrZero(s.ClimbOneCm),
			Fly:      valueOrZero(s.FlyOneCm),
			Dive:     valueOrZero(s.DiveOneCm),
			Minecart: valueOrZero(s.MinecartOneCm),
			Boat:     valueOrZero(s.BoatOneCm),
			Pig:      valueOrZero(s.PigOneCm),
			Horse:    valueOrZero(s.HorseOneCm),
			Aviate:   valueOrZero(s.AviateOneCm),
		},
	}
}

func (s *newFormatStats) toCounters() domain.Counters {
	if s.Stats == nil || s.Stats.Custom == nil {
		return domain.Counters{}
	}
	custom := s.Stats.Custom

	return domain.Counters{
		PlayTicks:       valueOrZero(custom.PlayOneMinute),
		GamesLeft:       valueOrZero(custom.LeaveGame),
		Jumps:           valueOrZero(custom.Jump),
		Deaths:          valueOrZero(custom.Deaths),
		DamageTaken:     valueOrZero(custom.DamageTaken),
		DamageDealt:     valueOrZero(custom.DamageDealt),
		MobKills:        valueOrZero(custom.MobKills),
		PlayerKills:     valueOrZero(custom.PlayerKills),
		CakeSlicesEaten: valueOrZero(custom.EatCakeSlice),

		Distance: domain.DistanceCounters{
			Walk:        valueOrZero(custom.WalkOneCm),
			Crouch:      valueOrZero(custom.CrouchOneCm),
			Sprint:      valueOrZero(custom.SprintOneCm),
			Swim:        valueOrZero(custom.SwimOneCm),
			Fall:        valueOrZero(custom.FallOneCm),
			Climb:       valueOrZero(custom.ClimbOneCm),
			Fly:         valueOrZero(custom.FlyOneCm),
			WalkOnWater: valueOrZero(custom.WalkOnWaterOneCm),
			Minecart:    valueOrZero(custom.MinecartOneCm),
			Boat:        valueOrZero(custom.BoatOneCm),
			Pig:         valueOrZero(custom.PigOneCm),
			Horse:       valueOrZero(custom.HorseOneCm),
			Aviate:      valueOrZero(custom.AviateOneCm),
		},
	}
}

// Parse a stats file that may contain old format keys, new format keys or both.
//
// Players that played across the schema change have their history split between the two
// formats, so the canonical counters are the sum of both.
func ParseCounters(data []byte) (domain.Counters, error) {
	var topLevel map[string]json.RawMessage
	if err := json.Unmarshal(data, &topLevel); err != nil {
		return domain.Counters{}, fmt.Errorf("%w: %w", domain.ErrMalformedStats, err)
	}
	if topLevel == nil {
		return domain.Counters{}, fmt.Errorf("%w: top level is not an object", domain.ErrMalformedStats)
	}

	oldFormat := new(oldFormatStats)
	if err := json.Unmarshal(data, oldFormat); err != nil {
		return domain.Counters{}, fmt.Errorf("%w: old format: %w", domain.ErrMalformedStats, err)
	}

	newFormat := new(newFormatStats)
	if err := json.Unmarshal(data, newFormat); err != nil {
		return domain.Counters{}, fmt.Errorf("%w: new format: %w", domain.ErrMalformedStats, err)
	}

	return oldFormat.toCounters().Add(newFormat.toCounters()), nil
}
