package domain_test

import (
	"fmt"
	"testing"

	"github.com/Amund211/wikistats/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerRecord(t *testing.T) {
	t.Parallel()

	t.Run("traveled distance is truncated", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			walk uint64
			km   uint64
		}{
			{0, 0},
			{99_999, 0},
			{100_000, 1},
			{199_999, 1},
			{200_000, 2},
			{249_999, 2},
			{250_000, 2},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("%d cm", tt.walk), func(t *testing.T) {
				t.Parallel()

				record := domain.NewPlayerRecord("uuid", "name", domain.Counters{
					Distance: domain.DistanceCounters{Walk: tt.walk},
				}, 0)
				require.Equal(t, tt.km, record.TraveledKM)
			})
		}
	})

	t.Run("every movement mode contributes", func(t *testing.T) {
		t.Parallel()

		distance := domain.DistanceCounters{
			Walk:        100_000,
			Crouch:      100_000,
			Sprint:      100_000,
			Swim:        100_000,
			Fall:        100_000,
			Climb:       100_000,
			Fly:         100_000,
			Dive:        100_000,
			WalkOnWater: 100_000,
			Minecart:    100_000,
			Boat:        100_000,
			Pig:         100_000,
			Horse:       100_000,
			Aviate:      100_000,
		}
		require.Equal(t, uint64(1_400_000), distance.TotalCM())

		record := domain.NewPlayerRecord("uuid", "name", domain.Counters{Distance: distance}, 3)
		require.Equal(t, uint64(14), record.TraveledKM)
		require.Equal(t, 3, record.Advancements)
		require.Equal(t, "uuid", record.UUID)
		require.Equal(t, "name", record.Name)
	})

	t.Run("sum is order independent", func(t *testing.T) {
		t.Parallel()

		a := domain.DistanceCounters{Walk: 150_000, Aviate: 49_999}
		b := domain.DistanceCounters{Aviate: 150_000, Walk: 49_999}
		require.Equal(t, a.TotalCM(), b.TotalCM())
		require.Equal(t,
			domain.NewPlayerRecord("x", "x", domain.Counters{Distance: a}, 0).TraveledKM,
			domain.NewPlayerRecord("x", "x", domain.Counters{Distance: b}, 0).TraveledKM,
		)
	})
}

func TestCountersAdd(t *testing.T) {
	t.Parallel()

	a := domain.Counters{
		PlayTicks:       1,
		GamesLeft:       2,
		Jumps:           3,
		Deaths:          4,
		DamageTaken:     5,
		DamageDealt:     6,
		MobKills:        7,
		PlayerKills:     8,
		CakeSlicesEaten: 9,
		Distance:        domain.DistanceCounters{Walk: 10, Dive: 11},
	}
	b := domain.Counters{
		PlayTicks:       100,
		GamesLeft:       200,
		Jumps:           300,
		Deaths:          400,
		DamageTaken:     500,
		DamageDealt:     600,
		MobKills:        700,
		PlayerKills:     800,
		CakeSlicesEaten: 900,
		Distance:        domain.DistanceCounters{Walk: 1000, WalkOnWater: 1100},
	}

	require.Equal(t, domain.Counters{
		PlayTicks:       101,
		GamesLeft:       202,
		Jumps:           303,
		Deaths:          404,
		DamageTaken:     505,
		DamageDealt:     606,
		MobKills:        707,
		PlayerKills:     808,
		CakeSlicesEaten: 909,
		Distance:        domain.DistanceCounters{Walk: 1010, Dive: 11, WalkOnWater: 1100},
	}, a.Add(b))
	require.Equal(t, a.Add(b), b.Add(a))
}
