package generate

// CountryInfo carries the demographic parameters a synthetic pyramid is
// shaped from. Figures are public estimates rounded to headline values.
type CountryInfo struct {
	Name          string
	Population    int64
	MedianAge     float64
	FertilityRate float64
}

// Countries is the built-in table of countries with demographic estimates.
var Countries = []CountryInfo{
	// North America
	{"United States", 331900000, 38.1, 1.8},
	{"Canada", 38000000, 41.1, 1.5},
	{"Mexico", 128900000, 29.2, 2.1},

	// South America
	{"Brazil", 212600000, 33.5, 1.7},
	{"Argentina", 45380000, 31.7, 2.3},
	{"Colombia", 50880000, 31.0, 1.8},
	{"Peru", 32970000, 31.0, 2.3},
	{"Chile", 19120000, 35.5, 1.7},
	{"Venezuela", 28440000, 30.0, 2.3},
	{"Ecuador", 17640000, 27.9, 2.4},
	{"Bolivia", 11670000, 25.3, 2.8},
	{"Paraguay", 7133000, 26.5, 2.5},
	{"Uruguay", 3474000, 35.5, 2.0},

	// Europe
	{"Germany", 83200000, 45.7, 1.6},
	{"United Kingdom", 67800000, 40.5, 1.7},
	{"France", 67400000, 41.4, 1.9},
	{"Italy", 60460000, 47.3, 1.3},
	{"Spain", 46750000, 43.9, 1.3},
	{"Poland", 37970000, 41.9, 1.5},
	{"Romania", 19240000, 42.5, 1.6},
	{"Netherlands", 17440000, 42.8, 1.6},
	{"Belgium", 11590000, 41.9, 1.7},
	{"Sweden", 10380000, 41.1, 1.7},
	{"Czech Republic", 10710000, 43.3, 1.7},
	{"Greece", 10720000, 45.6, 1.4},
	{"Portugal", 10280000, 44.6, 1.4},
	{"Hungary", 9660000, 43.3, 1.5},
	{"Austria", 9006000, 44.0, 1.5},
	{"Switzerland", 8655000, 42.7, 1.5},
	{"Denmark", 5831000, 42.0, 1.7},
	{"Finland", 5531000, 43.1, 1.4},
	{"Norway", 5408000, 39.8, 1.6},
	{"Ireland", 4942000, 37.8, 1.8},

	// Asia
	{"China", 1411780000, 38.4, 1.7},
	{"India", 1380000000, 28.4, 2.2},
	{"Indonesia", 273800000, 29.7, 2.3},
	{"Pakistan", 220900000, 22.8, 3.6},
	{"Bangladesh", 164700000, 27.6, 2.0},
	{"Japan", 126500000, 48.4, 1.4},
	{"Philippines", 109600000, 25.7, 2.5},
	{"Vietnam", 97340000, 32.6, 2.0},
	{"Turkey", 84340000, 31.5, 2.1},
	{"Iran", 83990000, 32.0, 2.1},
	{"Thailand", 69800000, 40.1, 1.5},
	{"South Korea", 51270000, 43.7, 0.9},
	{"Myanmar", 54410000, 29.2, 2.2},
	{"Saudi Arabia", 34810000, 30.8, 2.3},
	{"Malaysia", 32370000, 30.3, 2.0},
	{"Nepal", 29140000, 24.6, 1.9},
	{"Taiwan", 23570000, 42.5, 1.2},
	{"Sri Lanka", 21410000, 34.0, 2.2},
	{"Kazakhstan", 18750000, 30.7, 2.8},
	{"Cambodia", 16720000, 25.7, 2.5},
	{"Singapore", 5850000, 42.2, 1.1},

	// Africa
	{"Nigeria", 206100000, 18.1, 5.4},
	{"Ethiopia", 115000000, 19.5, 4.3},
	{"Egypt", 102300000, 23.9, 3.3},
	{"Democratic Republic of the Congo", 89560000, 16.7, 6.0},
	{"Tanzania", 59730000, 18.0, 4.9},
	{"South Africa", 59300000, 27.6, 2.4},
	{"Kenya", 53770000, 20.1, 3.5},
	{"Uganda", 45740000, 16.7, 5.0},
	{"Algeria", 43850000, 28.5, 3.0},
	{"Sudan", 43850000, 19.9, 4.4},
	{"Morocco", 36910000, 29.5, 2.4},
	{"Ghana", 31070000, 21.1, 3.9},
	{"Mozambique", 31260000, 17.6, 4.9},
	{"Cote d'Ivoire", 26380000, 18.9, 4.7},
	{"Cameroon", 26550000, 18.7, 4.6},
	{"Angola", 32870000, 16.7, 5.5},
	{"Niger", 24210000, 15.2, 7.0},
	{"Mali", 20250000, 16.3, 6.0},
	{"Senegal", 16740000, 19.4, 4.7},
	{"Tunisia", 11820000, 32.8, 2.2},
	{"Rwanda", 12950000, 20.0, 4.1},

	// Oceania
	{"Australia", 25700000, 37.9, 1.7},
	{"New Zealand", 5090000, 37.9, 1.8},
	{"Papua New Guinea", 8950000, 22.4, 3.6},
	{"Fiji", 896000, 27.9, 2.8},

	// Other major countries
	{"Russia", 144100000, 39.6, 1.6},
	{"Israel", 8655000, 30.5, 3.0},
	{"United Arab Emirates", 9890000, 32.6, 1.4},
	{"Qatar", 2832000, 33.7, 1.9},
	{"Kuwait", 4271000, 36.8, 2.1},
	{"Cuba", 11330000, 42.2, 1.6},
}
