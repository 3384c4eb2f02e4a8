package domaintest

import (
	"github.com/Amund211/wikistats/internal/domain"
)

type recordBuilder struct {
	uuid         string
	name         string
	counters     domain.Counters
	advancements int
}

func (rb *recordBuilder) WithName(name string) *recordBuilder {
	rb.name = name
	return rb
}

func (rb *recordBuilder) WithPlayTicks(playTicks uint64) *recordBuilder {
	rb.counters.PlayTicks = playTicks
	return rb
}

func (rb *recordBuilder) WithCounters(counters domain.Counters) *recordBuilder {
	rb.counters = counters
	return rb
}

func (rb *recordBuilder) WithAdvancements(advancements int) *recordBuilder {
	rb.advancements = advancements
	return rb
}

func (rb *recordBuilder) Build() domain.PlayerRecord {
	return domain.NewPlayerRecord(rb.uuid, rb.name, rb.counters, rb.advancements)
}

// The name defaults to the uuid, like a player without player data
func NewRecordBuilder(uuid string) *recordBuilder {
	return &recordBuilder{
		uuid: uuid,
		name: uuid,
	}
}
