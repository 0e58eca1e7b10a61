package shoplist

// SeedLists returns the fixed development dataset the memory store resets to.
func SeedLists() []List {
	return []List{
		{
			ID:       1,
			Name:     "Víkendový nákup",
			Archived: false,
			OwnerID:  1,
			Members: []Member{
				{ID: 1, Name: "Alena"},
				{ID: 2, Name: "Petr"},
				{ID: 3, Name: "Katka"},
			},
			Items: []Item{
				{ID: 1, Name: "Mléko 2×", Done: false},
				{ID: 2, Name: "Chléb", Done: true},
				{ID: 3, Name: "Máslo", Done: false},
			},
		},
		{
			ID:       2,
			Name:     "Dovolená hory",
			Archived: false,
			OwnerID:  2,
			Members: []Member{
				{ID: 1, Name: "Alena"},
				{ID: 2, Name: "Petr"},
			},
			Items: []Item{
				{ID: 1, Name: "Pivo", Done: false},
				{ID: 2, Name: "Špekáčky", Done: false},
			},
		},
		{
			ID:       3,
			Name:     "Firemní párty",
			Archived: true,
			OwnerID:  3,
			Members: []Member{
				{ID: 3, Name: "Katka"},
				{ID: 2, Name: "Petr"},
				{ID: 1, Name: "Alena"},
			},
			Items: []Item{
				{ID: 1, Name: "Chlebíčky", Done: true},
				{ID: 2, Name: "Pití", Done: true},
			},
		},
	}
}
