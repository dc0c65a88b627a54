package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// CardEntry describes one fight on a card template, before it is bound to a
// game. Order on the card follows slice order, first entry earliest.
type CardEntry struct {
	FighterA        string `json:"fighter_a"`
	FighterB        string `json:"fighter_b"`
	FighterACountry string `json:"fighter_a_country"`
	FighterBCountry string `json:"fighter_b_country"`
}

// DefaultFightCard is the built-in placeholder card used when no card file is
// configured.
var DefaultFightCard = []CardEntry{
	{FighterA: "Jon Jones", FighterB: "Daniel Cormier", FighterACountry: "US", FighterBCountry: "US"},
	{FighterA: "Conor McGregor", FighterB: "Khabib Nurmagomedov", FighterACountry: "IE", FighterBCountry: "RU"},
	{FighterA: "Israel Adesanya", FighterB: "Alex Pereira", FighterACountry: "NZ", FighterBCountry: "BR"},
	{FighterA: "Max Holloway", FighterB: "Alexander Volkanovski", FighterACountry: "US", FighterBCountry: "AU"},
	{FighterA: "Amanda Nunes", FighterB: "Valentina Shevchenko", FighterACountry: "BR", FighterBCountry: "KG"},
}

// LoadFightCard reads a JSON card file, falling back to the default card when
// the path is empty
func LoadFightCard(path string) ([]CardEntry, error) {
	if path == "" {
		return DefaultFightCard, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fight card file: %w", err)
	}

	var card []CardEntry
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("failed to parse fight card file: %w", err)
	}

	if len(card) == 0 {
		return nil, fmt.Errorf("fight card file %s contains no fights", path)
	}

	return card, nil
}
