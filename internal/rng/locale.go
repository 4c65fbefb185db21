package rng

// Fixed Polish-style name and city pools. Spec non-goals explicitly limit
// localization to "Polish-style text fragments in fixed data columns" —
// there is no faker library anywhere in the retrieval pack (checked across
// every example repo), so this is hand-authored fixture data rather than a
// dependency, matching the same fixed-table style as the VOIVODESHIPS and
// EVENT_DEFINITIONS tables in internal/model.

var cityPool = []string{
	"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin",
	"Bydgoszcz", "Lublin", "Białystok", "Katowice", "Gdynia", "Częstochowa",
	"Radom", "Sosnowiec", "Toruń", "Kielce", "Gliwice", "Zabrze", "Bytom",
	"Olsztyn", "Bielsko-Biała", "Rzeszów", "Ruda Śląska", "Rybnik",
	"Tychy", "Dąbrowa Górnicza", "Opole", "Elbląg", "Płock", "Wałbrzych",
	"Włocławek", "Tarnów", "Chorzów", "Kalisz", "Koszalin", "Legnica",
	"Grudziądz", "Słupsk", "Jaworzno", "Jastrzębie-Zdrój", "Nowy Sącz",
	"Jelenia Góra", "Siedlce", "Mysłowice", "Konin", "Piotrków Trybunalski",
	"Inowrocław", "Lubin", "Ostrowiec Świętokrzyski",
}

var maleFirstNamePool = []string{
	"Adam", "Piotr", "Krzysztof", "Andrzej", "Tomasz", "Paweł", "Michał",
	"Marcin", "Grzegorz", "Jakub", "Łukasz", "Stanisław", "Marek",
	"Tadeusz", "Jan", "Józef", "Henryk", "Rafał", "Kamil", "Wojciech",
	"Dariusz", "Mariusz", "Sławomir", "Zbigniew", "Ryszard", "Robert",
	"Bartłomiej", "Karol", "Damian", "Artur",
}

var femaleFirstNamePool = []string{
	"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara",
	"Ewa", "Krystyna", "Magdalena", "Joanna", "Elżbieta", "Aleksandra",
	"Natalia", "Jadwiga", "Danuta", "Teresa", "Monika", "Beata",
	"Dorota", "Marta", "Halina", "Irena", "Justyna", "Karolina",
	"Wiesława", "Renata", "Urszula", "Grażyna", "Iwona", "Paulina",
}

var lastNamePool = []string{
	"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński",
	"Lewandowski", "Zieliński", "Szymański", "Woźniak", "Dąbrowski",
	"Kozłowski", "Jankowski", "Mazur", "Kwiatkowski", "Krawczyk",
	"Piotrowski", "Grabowski", "Nowakowski", "Pawłowski", "Michalski",
	"Nowicki", "Adamczyk", "Dudek", "Zając", "Wieczorek", "Jabłoński",
	"Król", "Majewski", "Olszewski", "Stępień", "Jaworski", "Malinowski",
	"Wojciechowski", "Górski", "Rutkowski", "Michalak", "Sikora",
}

// City returns a uniformly chosen Polish-style city name.
func (s *Source) City() string {
	return s.ChoiceString(cityPool)
}

// FirstNameMale returns a uniformly chosen Polish-style male given name.
func (s *Source) FirstNameMale() string {
	return s.ChoiceString(maleFirstNamePool)
}

// FirstNameFemale returns a uniformly chosen Polish-style female given
// name.
func (s *Source) FirstNameFemale() string {
	return s.ChoiceString(femaleFirstNamePool)
}

// LastName returns a uniformly chosen Polish-style surname.
func (s *Source) LastName() string {
	return s.ChoiceString(lastNamePool)
}
