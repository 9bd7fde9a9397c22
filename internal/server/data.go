package server

import "gazetteer/internal/countries"

// Dataset returns the built-in demo collection, ordered by name.
func Dataset() []countries.Country {
	return []countries.Country{
		{Name: "Argentina", Capital: "Buenos Aires", CurrencyName: "Argentine peso", LanguageName: "Spanish", FlagCode: "ar"},
		{Name: "Australia", Capital: "Canberra", CurrencyName: "Australian dollar", LanguageName: "English", FlagCode: "au"},
		{Name: "Austria", Capital: "Vienna", CurrencyName: "Euro", LanguageName: "German", FlagCode: "at"},
		{Name: "Belgium", Capital: "Brussels", CurrencyName: "Euro", LanguageName: "Dutch", FlagCode: "be"},
		{Name: "Brazil", Capital: "Brasília", CurrencyName: "Brazilian real", LanguageName: "Portuguese", FlagCode: "br"},
		{Name: "Canada", Capital: "Ottawa", CurrencyName: "Canadian dollar", LanguageName: "English", FlagCode: "ca"},
		{Name: "Chile", Capital: "Santiago", CurrencyName: "Chilean peso", LanguageName: "Spanish", FlagCode: "cl"},
		{Name: "China", Capital: "Beijing", CurrencyName: "Renminbi", LanguageName: "Mandarin", FlagCode: "cn"},
		{Name: "Colombia", Capital: "Bogotá", CurrencyName: "Colombian peso", LanguageName: "Spanish", FlagCode: "co"},
		{Name: "Denmark", Capital: "Copenhagen", CurrencyName: "Danish krone", LanguageName: "Danish", FlagCode: "dk"},
		{Name: "Egypt", Capital: "Cairo", CurrencyName: "Egyptian pound", LanguageName: "Arabic", FlagCode: "eg"},
		{Name: "Finland", Capital: "Helsinki", CurrencyName: "Euro", LanguageName: "Finnish", FlagCode: "fi"},
		{Name: "France", Capital: "Paris", CurrencyName: "Euro", LanguageName: "French", FlagCode: "fr"},
		{Name: "Germany", Capital: "Berlin", CurrencyName: "Euro", LanguageName: "German", FlagCode: "de"},
		{Name: "Greece", Capital: "Athens", CurrencyName: "Euro", LanguageName: "Greek", FlagCode: "gr"},
		{Name: "India", Capital: "New Delhi", CurrencyName: "Indian rupee", LanguageName: "Hindi", FlagCode: "in"},
		{Name: "Indonesia", Capital: "Jakarta", CurrencyName: "Indonesian rupiah", LanguageName: "Indonesian", FlagCode: "id"},
		{Name: "Ireland", Capital: "Dublin", CurrencyName: "Euro", LanguageName: "English", FlagCode: "ie"},
		{Name: "Italy", Capital: "Rome", CurrencyName: "Euro", LanguageName: "Italian", FlagCode: "it"},
		{Name: "Japan", Capital: "Tokyo", CurrencyName: "Japanese yen", LanguageName: "Japanese", FlagCode: "jp"},
		{Name: "Kenya", Capital: "Nairobi", CurrencyName: "Kenyan shilling", LanguageName: "Swahili", FlagCode: "ke"},
		{Name: "Mexico", Capital: "Mexico City", CurrencyName: "Mexican peso", LanguageName: "Spanish", FlagCode: "mx"},
		{Name: "Morocco", Capital: "Rabat", CurrencyName: "Moroccan dirham", LanguageName: "Arabic", FlagCode: "ma"},
		{Name: "Netherlands", Capital: "Amsterdam", CurrencyName: "Euro", LanguageName: "Dutch", FlagCode: "nl"},
		{Name: "New Zealand", Capital: "Wellington", CurrencyName: "New Zealand dollar", LanguageName: "English", FlagCode: "nz"},
		{Name: "Nigeria", Capital: "Abuja", CurrencyName: "Nigerian naira", LanguageName: "English", FlagCode: "ng"},
		{Name: "Norway", Capital: "Oslo", CurrencyName: "Norwegian krone", LanguageName: "Norwegian", FlagCode: "no"},
		{Name: "Peru", Capital: "Lima", CurrencyName: "Peruvian sol", LanguageName: "Spanish", FlagCode: "pe"},
		{Name: "Poland", Capital: "Warsaw", CurrencyName: "Polish złoty", LanguageName: "Polish", FlagCode: "pl"},
		{Name: "Portugal", Capital: "Lisbon", CurrencyName: "Euro", LanguageName: "Portuguese", FlagCode: "pt"},
		{Name: "South Africa", Capital: "Pretoria", CurrencyName: "South African rand", LanguageName: "Zulu", FlagCode: "za"},
		{Name: "South Korea", Capital: "Seoul", CurrencyName: "South Korean won", LanguageName: "Korean", FlagCode: "kr"},
		{Name: "Spain", Capital: "Madrid", CurrencyName: "Euro", LanguageName: "Spanish", FlagCode: "es"},
		{Name: "Sweden", Capital: "Stockholm", CurrencyName: "Swedish krona", LanguageName: "Swedish", FlagCode: "se"},
		{Name: "Switzerland", Capital: "Bern", CurrencyName: "Swiss franc", LanguageName: "German", FlagCode: "ch"},
		{Name: "Thailand", Capital: "Bangkok", CurrencyName: "Thai baht", LanguageName: "Thai", FlagCode: "th"},
		{Name: "Turkey", Capital: "Ankara", CurrencyName: "Turkish lira", LanguageName: "Turkish", FlagCode: "tr"},
		{Name: "United Kingdom", Capital: "London", CurrencyName: "Pound sterling", LanguageName: "English", FlagCode: "gb"},
		{Name: "United States", Capital: "Washington, D.C.", CurrencyName: "United States dollar", LanguageName: "English", FlagCode: "us"},
		{Name: "Vietnam", Capital: "Hanoi", CurrencyName: "Vietnamese đồng", LanguageName: "Vietnamese", FlagCode: "vn"},
	}
}
