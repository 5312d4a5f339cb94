package locale

var packs = map[Locale]Pack{
	English: {
		Name: "English",
		Days: [7][]string{
			{"Monday"}, {"Tuesday"}, {"Wednesday"}, {"Thursday"},
			{"Friday"}, {"Saturday"}, {"Sunday"},
		},
		DayWord:        []string{"day"},
		RestMarkers:    []string{"rest", "rest day", "off", "off day", "recovery", "-"},
		IntroPrefixes:  []string{"here is", "here's", "here’s", "here are", "below is", "sure", "of course", "certainly"},
		ProgramPhrases: []string{"weekly workout program", "weekly workout plan", "weekly training program", "weekly training plan"},
		ProfileLabels:  []string{"goal", "height", "weight", "age"},
		SetUnits:       []string{"sets", "set"},
		RepUnits:       []string{"repetitions", "reps", "rep"},
		MinuteUnits:    []string{"minutes", "minute", "mins", "min"},
		HourUnits:      []string{"hours", "hour", "hrs", "hr"},
		SecondUnits:    []string{"seconds", "second", "secs", "sec"},
		MealSlots: map[string][]string{
			"breakfast": {"breakfast"},
			"lunch":     {"lunch"},
			"dinner":    {"dinner"},
			"snack":     {"snack", "snacks"},
		},
		Ingredients: []string{"ingredients"},
		Recipe:      []string{"recipe", "instructions", "preparation", "directions"},
		Calories:    []string{"calories", "kcal"},
		Macros:      []string{"macros", "macronutrients"},
	},
	Turkish: {
		Name: "Türkçe",
		Days: [7][]string{
			{"Pazartesi"}, {"Salı", "Sali"}, {"Çarşamba", "Carsamba"}, {"Perşembe", "Persembe"},
			{"Cuma"}, {"Cumartesi"}, {"Pazar"},
		},
		DayWord:        []string{"gun"},
		RestMarkers:    []string{"dinlenme", "dinlenme gunu", "yok", "-"},
		IntroPrefixes:  []string{"iste", "asagida", "tabii", "elbette"},
		ProgramPhrases: []string{"haftalik antrenman programi", "haftalik egzersiz programi", "haftalik antrenman plani"},
		ProfileLabels:  []string{"hedef", "boy", "kilo", "yas"},
		SetUnits:       []string{"set", "seri"},
		RepUnits:       []string{"tekrar"},
		MinuteUnits:    []string{"dakika", "dk"},
		HourUnits:      []string{"saat"},
		SecondUnits:    []string{"saniye", "sn"},
		MealSlots: map[string][]string{
			"breakfast": {"kahvalti"},
			"lunch":     {"ogle yemegi", "ogle"},
			"dinner":    {"aksam yemegi", "aksam"},
			"snack":     {"ara ogun", "ara ogunler", "atistirmalik"},
		},
		Ingredients: []string{"malzemeler", "icindekiler"},
		Recipe:      []string{"tarif", "hazirlanisi", "yapilisi"},
		Calories:    []string{"kalori"},
		Macros:      []string{"makrolar", "makro", "besin degerleri"},
	},
	German: {
		Name: "Deutsch",
		Days: [7][]string{
			{"Montag"}, {"Dienstag"}, {"Mittwoch"}, {"Donnerstag"},
			{"Freitag"}, {"Samstag", "Sonnabend"}, {"Sonntag"},
		},
		DayWord:        []string{"tag"},
		RestMarkers:    []string{"ruhetag", "ruhe", "pause", "erholung"},
		IntroPrefixes:  []string{"hier ist", "hier sind", "hier dein", "gerne", "nachfolgend"},
		ProgramPhrases: []string{"wochentlicher trainingsplan", "wochentliches trainingsprogramm", "wochentlichen trainingsplan", "trainingsplan fur die woche"},
		ProfileLabels:  []string{"ziel", "große", "grosse", "gewicht", "alter"},
		SetUnits:       []string{"satze", "saetze", "satz", "sets"},
		RepUnits:       []string{"wiederholungen", "wdh"},
		MinuteUnits:    []string{"minuten", "min"},
		HourUnits:      []string{"stunden", "stunde", "std"},
		SecondUnits:    []string{"sekunden", "sek"},
		MealSlots: map[string][]string{
			"breakfast": {"fruhstuck"},
			"lunch":     {"mittagessen"},
			"dinner":    {"abendessen"},
			"snack":     {"zwischenmahlzeit", "snack"},
		},
		Ingredients: []string{"zutaten"},
		Recipe:      []string{"rezept", "zubereitung", "anleitung"},
		Calories:    []string{"kalorien"},
		Macros:      []string{"makros", "makronahrstoffe", "nahrwerte"},
	},
	Spanish: {
		Name: "Español",
		Days: [7][]string{
			{"Lunes"}, {"Martes"}, {"Miércoles", "Miercoles"}, {"Jueves"},
			{"Viernes"}, {"Sábado", "Sabado"}, {"Domingo"},
		},
		DayWord:        []string{"dia"},
		RestMarkers:    []string{"descanso", "dia de descanso"},
		IntroPrefixes:  []string{"aqui esta", "aqui tienes", "aqui te", "a continuacion", "claro"},
		ProgramPhrases: []string{"programa de entrenamiento semanal", "plan de entrenamiento semanal", "rutina semanal"},
		ProfileLabels:  []string{"objetivo", "altura", "peso", "edad"},
		SetUnits:       []string{"series", "serie"},
		RepUnits:       []string{"repeticiones", "reps"},
		MinuteUnits:    []string{"minutos", "min"},
		HourUnits:      []string{"horas", "hora"},
		SecondUnits:    []string{"segundos", "seg"},
		MealSlots: map[string][]string{
			"breakfast": {"desayuno"},
			"lunch":     {"almuerzo", "comida"},
			"dinner":    {"cena"},
			"snack":     {"merienda", "tentempie", "snack"},
		},
		Ingredients: []string{"ingredientes"},
		Recipe:      []string{"receta", "preparacion", "instrucciones"},
		Calories:    []string{"calorias"},
		Macros:      []string{"macros", "macronutrientes"},
	},
}
