package domain

const CENTIMETERS_PER_KILOMETER = 100 * 1000

type PlayerRecord struct {
	UUID string
	Name string

	Counters

	TraveledKM   uint64
	Advancements int
}

func NewPlayerRecord(uuid string, name string, counters Counters, advancements int) PlayerRecord {
	return PlayerRecord{
		UUID: uuid,
		Name: name,

		Counters: counters,

		TraveledKM:   counters.Distance.TotalCM() / CENTIMETERS_PER_KILOMETER,
		Advancements: advancements,
	}
}
