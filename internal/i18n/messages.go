// Localized strings for pages and validation messages.

package i18n

import "fmt"

// Messages holds every user-visible string of a converter page.
type Messages struct {
	SiteName string
	// Titles is keyed by converter page name ("cl-to-g", "g-to-cl", ...).
	Titles map[string]string

	VolumeLabel string
	MassLabel   string
	// VolumeRef and MassRef are the nouns as used inside InvalidNumbers.
	VolumeRef string
	MassRef   string

	Substance                string
	SelectSubstancePrompt    string
	CustomSubstance          string
	Density                  string
	CustomDensityPlaceholder string // %s is the density unit.
	Convert                  string
	Result                   string
	FAQ                      string
	OtherTools               string

	SelectSubstance string
	// InvalidNumbers takes the quantity noun, its unit and the density unit.
	InvalidNumbers string
}

// InvalidNumbersFor formats the invalid input message.
func (m *Messages) InvalidNumbersFor(isVolume bool, unit, densityUnit string) string {
	ref := m.MassRef
	if isVolume {
		ref = m.VolumeRef
	}
	return fmt.Sprintf(m.InvalidNumbers, ref, unit, densityUnit)
}

// Messages returns the catalog for l, falling back to English.
func (l Lang) Messages() *Messages {
	if m, ok := catalog[l]; ok {
		return m
	}
	return catalog[EN]
}

var catalog = map[Lang]*Messages{
	EN: {
		SiteName: "CL to G Converter",
		Titles: map[string]string{
			"cl-to-g": "Centiliters to Grams",
			"g-to-cl": "Grams to Centiliters",
			"l-to-g":  "Liters to Grams",
			"g-to-l":  "Grams to Liters",
		},
		VolumeLabel:              "Volume",
		MassLabel:                "Mass",
		VolumeRef:                "the volume",
		MassRef:                  "the mass",
		Substance:                "Substance",
		SelectSubstancePrompt:    "Select a substance",
		CustomSubstance:          "Custom density",
		Density:                  "Density",
		CustomDensityPlaceholder: "Enter custom density (%s)",
		Convert:                  "Convert",
		Result:                   "Result",
		FAQ:                      "Frequently asked questions",
		OtherTools:               "Other converters",
		SelectSubstance:          "Please select a substance.",
		InvalidNumbers:           "Please enter valid positive numbers for %s (%s) and the density (%s).",
	},
	AR: {
		SiteName: "محول السنتيلتر إلى غرام",
		Titles: map[string]string{
			"cl-to-g": "سنتيلتر إلى غرام",
			"g-to-cl": "غرام إلى سنتيلتر",
			"l-to-g":  "لتر إلى غرام",
			"g-to-l":  "غرام إلى لتر",
		},
		VolumeLabel:              "الحجم",
		MassLabel:                "الكتلة",
		VolumeRef:                "الحجم",
		MassRef:                  "الكتلة",
		Substance:                "المادة",
		SelectSubstancePrompt:    "اختر مادة",
		CustomSubstance:          "كثافة مخصصة",
		Density:                  "الكثافة",
		CustomDensityPlaceholder: "أدخل الكثافة المخصصة (%s)",
		Convert:                  "تحويل",
		Result:                   "النتيجة",
		FAQ:                      "الأسئلة الشائعة",
		OtherTools:               "محولات أخرى",
		SelectSubstance:          "يرجى اختيار مادة.",
		InvalidNumbers:           "يرجى إدخال أرقام موجبة صحيحة لـ%s (%s) والكثافة (%s).",
	},
	DE: {
		SiteName: "cL-in-g-Rechner",
		Titles: map[string]string{
			"cl-to-g": "Zentiliter in Gramm",
			"g-to-cl": "Gramm in Zentiliter",
			"l-to-g":  "Liter in Gramm",
			"g-to-l":  "Gramm in Liter",
		},
		VolumeLabel:              "Volumen",
		MassLabel:                "Masse",
		VolumeRef:                "das Volumen",
		MassRef:                  "die Masse",
		Substance:                "Substanz",
		SelectSubstancePrompt:    "Substanz auswählen",
		CustomSubstance:          "Eigene Dichte",
		Density:                  "Dichte",
		CustomDensityPlaceholder: "Eigene Dichte eingeben (%s)",
		Convert:                  "Umrechnen",
		Result:                   "Ergebnis",
		FAQ:                      "Häufige Fragen",
		OtherTools:               "Weitere Umrechner",
		SelectSubstance:          "Bitte wählen Sie eine Substanz aus.",
		InvalidNumbers:           "Bitte geben Sie gültige positive Zahlen für %s (%s) und die Dichte (%s) ein.",
	},
	ES: {
		SiteName: "Conversor de cL a g",
		Titles: map[string]string{
			"cl-to-g": "Centilitros a gramos",
			"g-to-cl": "Gramos a centilitros",
			"l-to-g":  "Litros a gramos",
			"g-to-l":  "Gramos a litros",
		},
		VolumeLabel:              "Volumen",
		MassLabel:                "Masa",
		VolumeRef:                "el volumen",
		MassRef:                  "la masa",
		Substance:                "Sustancia",
		SelectSubstancePrompt:    "Seleccione una sustancia",
		CustomSubstance:          "Densidad personalizada",
		Density:                  "Densidad",
		CustomDensityPlaceholder: "Introduzca la densidad personalizada (%s)",
		Convert:                  "Convertir",
		Result:                   "Resultado",
		FAQ:                      "Preguntas frecuentes",
		OtherTools:               "Otros conversores",
		SelectSubstance:          "Por favor, seleccione una sustancia.",
		InvalidNumbers:           "Introduzca números positivos válidos para %s (%s) y la densidad (%s).",
	},
	FR: {
		SiteName: "Convertisseur cL en g",
		Titles: map[string]string{
			"cl-to-g": "Centilitres en grammes",
			"g-to-cl": "Grammes en centilitres",
			"l-to-g":  "Litres en grammes",
			"g-to-l":  "Grammes en litres",
		},
		VolumeLabel:              "Volume",
		MassLabel:                "Masse",
		VolumeRef:                "le volume",
		MassRef:                  "la masse",
		Substance:                "Substance",
		SelectSubstancePrompt:    "Sélectionnez une substance",
		CustomSubstance:          "Densité personnalisée",
		Density:                  "Densité",
		CustomDensityPlaceholder: "Entrez la densité personnalisée (%s)",
		Convert:                  "Convertir",
		Result:                   "Résultat",
		FAQ:                      "Questions fréquentes",
		OtherTools:               "Autres convertisseurs",
		SelectSubstance:          "Veuillez sélectionner une substance.",
		InvalidNumbers:           "Veuillez entrer des nombres positifs valides pour %s (%s) et la densité (%s).",
	},
	IT: {
		SiteName: "Convertitore da cL a g",
		Titles: map[string]string{
			"cl-to-g": "Centilitri in grammi",
			"g-to-cl": "Grammi in centilitri",
			"l-to-g":  "Litri in grammi",
			"g-to-l":  "Grammi in litri",
		},
		VolumeLabel:              "Volume",
		MassLabel:                "Massa",
		VolumeRef:                "il volume",
		MassRef:                  "la massa",
		Substance:                "Sostanza",
		SelectSubstancePrompt:    "Seleziona una sostanza",
		CustomSubstance:          "Densità personalizzata",
		Density:                  "Densità",
		CustomDensityPlaceholder: "Inserisci la densità personalizzata (%s)",
		Convert:                  "Converti",
		Result:                   "Risultato",
		FAQ:                      "Domande frequenti",
		OtherTools:               "Altri convertitori",
		SelectSubstance:          "Seleziona una sostanza.",
		InvalidNumbers:           "Inserisci numeri positivi validi per %s (%s) e la densità (%s).",
	},
	PT: {
		SiteName: "Conversor de cL para g",
		Titles: map[string]string{
			"cl-to-g": "Centilitros para gramas",
			"g-to-cl": "Gramas para centilitros",
			"l-to-g":  "Litros para gramas",
			"g-to-l":  "Gramas para litros",
		},
		VolumeLabel:              "Volume",
		MassLabel:                "Massa",
		VolumeRef:                "o volume",
		MassRef:                  "a massa",
		Substance:                "Substância",
		SelectSubstancePrompt:    "Selecione uma substância",
		CustomSubstance:          "Densidade personalizada",
		Density:                  "Densidade",
		CustomDensityPlaceholder: "Insira a densidade personalizada (%s)",
		Convert:                  "Converter",
		Result:                   "Resultado",
		FAQ:                      "Perguntas frequentes",
		OtherTools:               "Outros conversores",
		SelectSubstance:          "Por favor, selecione uma substância.",
		InvalidNumbers:           "Insira números positivos válidos para %s (%s) e a densidade (%s).",
	},
	RU: {
		SiteName: "Конвертер сл в г",
		Titles: map[string]string{
			"cl-to-g": "Сантилитры в граммы",
			"g-to-cl": "Граммы в сантилитры",
			"l-to-g":  "Литры в граммы",
			"g-to-l":  "Граммы в литры",
		},
		VolumeLabel:              "Объём",
		MassLabel:                "Масса",
		VolumeRef:                "объёма",
		MassRef:                  "массы",
		Substance:                "Вещество",
		SelectSubstancePrompt:    "Выберите вещество",
		CustomSubstance:          "Своя плотность",
		Density:                  "Плотность",
		CustomDensityPlaceholder: "Введите свою плотность (%s)",
		Convert:                  "Преобразовать",
		Result:                   "Результат",
		FAQ:                      "Частые вопросы",
		OtherTools:               "Другие конвертеры",
		SelectSubstance:          "Пожалуйста, выберите вещество.",
		InvalidNumbers:           "Введите допустимые положительные числа для %s (%s) и плотности (%s).",
	},
	TR: {
		SiteName: "cL'den g'ye Dönüştürücü",
		Titles: map[string]string{
			"cl-to-g": "Santilitreden grama",
			"g-to-cl": "Gramdan santilitreye",
			"l-to-g":  "Litreden grama",
			"g-to-l":  "Gramdan litreye",
		},
		VolumeLabel:              "Hacim",
		MassLabel:                "Kütle",
		VolumeRef:                "hacim",
		MassRef:                  "kütle",
		Substance:                "Madde",
		SelectSubstancePrompt:    "Bir madde seçin",
		CustomSubstance:          "Özel yoğunluk",
		Density:                  "Yoğunluk",
		CustomDensityPlaceholder: "Özel yoğunluğu girin (%s)",
		Convert:                  "Dönüştür",
		Result:                   "Sonuç",
		FAQ:                      "Sıkça sorulan sorular",
		OtherTools:               "Diğer dönüştürücüler",
		SelectSubstance:          "Lütfen bir madde seçin.",
		InvalidNumbers:           "Lütfen %s (%s) ve yoğunluk (%s) için geçerli pozitif sayılar girin.",
	},
}
