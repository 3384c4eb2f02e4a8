package ports

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Amund211/wikistats/internal/domain"
)

// 20 ticks per second
const TICKS_PER_HOUR = 20 * 60 * 60

// Damage counters are stored in tenths of a half heart
const DAMAGE_PER_HALF_HEART = 10

const WIKI_TABLE_START = `{| class="wikitable sortable" style="margin-left:0"`
const WIKI_TABLE_ROW_SEPARATOR = "|-"
const WIKI_TABLE_HEADER = `! Player !! Play time (hours) !! Games quit !! Jumps !! Deaths !! Damage taken (half hearts) !! Damage dealt (half hearts) !! Mob kills !! Player kills !! Traveled (km) !! Cake slices eaten !!data-sort-type="number" | Advancements`
const WIKI_TABLE_END = "|}"

func FormatWikiTableRow(record domain.PlayerRecord, totalAdvancements int) string {
	return fmt.Sprintf(
		"| [[%s]] || %d || %d || %d || %d || %d || %d || %d || %d || %d || %d || %d/%d",
		record.Name,
		record.PlayTicks/TICKS_PER_HOUR,
		record.GamesLeft,
		record.Jumps,
		record.Deaths,
		record.DamageTaken/DAMAGE_PER_HALF_HEART,
		record.DamageDealt/DAMAGE_PER_HALF_HEART,
		record.MobKills,
		record.PlayerKills,
		record.TraveledKM,
		record.CakeSlicesEaten,
		record.Advancements,
		totalAdvancements,
	)
}

// Writes the records in the given order as a sortable MediaWiki table
func RenderWikiTable(w io.Writer, records []domain.PlayerRecord, totalAdvancements int) error {
	bw := bufio.NewWriter(w)

	lines := make([]string, 0, 4+2*len(records))
	lines = append(lines, WIKI_TABLE_START, WIKI_TABLE_ROW_SEPARATOR, WIKI_TABLE_HEADER)
	for _, record := range records {
		lines = append(lines, WIKI_TABLE_ROW_SEPARATOR, FormatWikiTableRow(record, totalAdvancements))
	}
	lines = append(lines, WIKI_TABLE_END)

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write wiki table: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush wiki table: %w", err)
	}
	return nil
}
