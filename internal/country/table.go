package country

// Default returns the built-in rule table.
func Default() *Table {
	return NewTable(defaultRules()...)
}

// Personal-data policy presets
var (
	// continental Europe: disclosure tolerated, nothing demanded
	europeanDisclosure = PersonalInfoRule{
		Age:           Optional,
		BirthDate:     Optional,
		MaritalStatus: Optional,
		Nationality:   Optional,
		Gender:        Optional,
		DriverLicense: Optional,
	}
	// anti-discrimination markets
	antiDiscrimination = PersonalInfoRule{
		Age:           Forbidden,
		BirthDate:     Forbidden,
		MaritalStatus: Forbidden,
		Nationality:   Forbidden,
		Gender:        Forbidden,
		DriverLicense: Optional,
	}
	antiDiscriminationBlocked = []string{"photo", "birthDate", "maritalStatus", "nationality", "gender"}
)

var (
	formatEU     = FormatRule{PaperSize: "A4", DateFormat: "DD/MM/YYYY", MaxPages: 2}
	formatISO    = FormatRule{PaperSize: "A4", DateFormat: "YYYY-MM-DD", MaxPages: 2}
	formatLetter = FormatRule{PaperSize: "Letter", DateFormat: "MM/DD/YYYY", MaxPages: 1}
)

func defaultRules() []Rule {
	return []Rule{
		// Europe
		{
			Code: "FR", Name: "France", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"fr", "en"},
		},
		{
			Code: "BE", Name: "Belgium", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"fr", "nl", "en"},
		},
		{
			Code: "CH", Name: "Switzerland", Zone: ZoneEurope,
			Photo: PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo: PersonalInfoRule{
				Age:           Expected,
				BirthDate:     Expected,
				MaritalStatus: Optional,
				Nationality:   Expected,
				Gender:        Optional,
				DriverLicense: Optional,
			},
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD.MM.YYYY", MaxPages: 2},
			AcceptedLanguages: []string{"fr", "de", "it", "en"},
		},
		{
			Code: "LU", Name: "Luxembourg", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"fr", "de", "en"},
		},
		{
			Code: "DE", Name: "Germany", Zone: ZoneEurope,
			Photo: PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo: PersonalInfoRule{
				Age:           Optional,
				BirthDate:     Expected,
				MaritalStatus: Optional,
				Nationality:   Optional,
				Gender:        Optional,
				DriverLicense: Optional,
			},
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD.MM.YYYY", MaxPages: 2},
			Features:          Features{Signature: true},
			AcceptedLanguages: []string{"de", "en"},
		},
		{
			Code: "AT", Name: "Austria", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo:      europeanDisclosure,
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD.MM.YYYY", MaxPages: 2},
			Features:          Features{Signature: true},
			AcceptedLanguages: []string{"de", "en"},
		},
		{
			Code: "NL", Name: "Netherlands", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"nl", "en"},
		},
		{
			Code: "ES", Name: "Spain", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"es", "en"},
		},
		{
			Code: "IT", Name: "Italy", Zone: ZoneEurope,
			Photo:        PhotoRule{Allowed: true},
			PersonalInfo: europeanDisclosure,
			Format:       formatEU,
			Features: Features{
				LegalFooter: "Autorizzo il trattamento dei dati personali ai sensi del Regolamento UE 2016/679 (GDPR).",
			},
			AcceptedLanguages: []string{"it", "en"},
		},
		{
			Code: "PT", Name: "Portugal", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"pt", "en"},
		},
		{
			Code: "SE", Name: "Sweden", Zone: ZoneEurope,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatISO,
			AcceptedLanguages: []string{"sv", "en"},
		},
		{
			Code: "PL", Name: "Poland", Zone: ZoneEurope,
			Photo:        PhotoRule{Allowed: true},
			PersonalInfo: europeanDisclosure,
			Format:       formatEU,
			Features: Features{
				LegalFooter: "Wyrażam zgodę na przetwarzanie moich danych osobowych dla potrzeb niezbędnych do realizacji procesu rekrutacji (RODO).",
			},
			AcceptedLanguages: []string{"pl", "en"},
		},

		// Anglo
		{
			Code: "GB", Name: "United Kingdom", Zone: ZoneAnglo,
			PersonalInfo:      antiDiscrimination,
			Format:            formatEU,
			Features:          Features{BlockedFields: antiDiscriminationBlocked},
			AcceptedLanguages: []string{"en"},
		},
		{
			Code: "IE", Name: "Ireland", Zone: ZoneAnglo,
			PersonalInfo:      antiDiscrimination,
			Format:            formatEU,
			Features:          Features{BlockedFields: antiDiscriminationBlocked},
			AcceptedLanguages: []string{"en"},
		},
		{
			Code: "US", Name: "United States", Zone: ZoneAnglo,
			PersonalInfo:      antiDiscrimination,
			Format:            formatLetter,
			Features:          Features{BlockedFields: antiDiscriminationBlocked},
			AcceptedLanguages: []string{"en"},
		},
		{
			Code: "CA", Name: "Canada", Zone: ZoneAnglo,
			PersonalInfo:      antiDiscrimination,
			Format:            FormatRule{PaperSize: "Letter", DateFormat: "YYYY-MM-DD", MaxPages: 2},
			Features:          Features{BlockedFields: antiDiscriminationBlocked},
			AcceptedLanguages: []string{"en", "fr"},
		},
		{
			Code: "AU", Name: "Australia", Zone: ZoneAnglo,
			PersonalInfo:      antiDiscrimination,
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD/MM/YYYY", MaxPages: 3},
			Features:          Features{BlockedFields: antiDiscriminationBlocked},
			AcceptedLanguages: []string{"en"},
		},

		// Asia-Pacific
		{
			Code: "JP", Name: "Japan", Zone: ZoneAsiaPacific,
			Photo: PhotoRule{Allowed: true, Required: true, Recommended: true},
			PersonalInfo: PersonalInfoRule{
				Age:           Required,
				BirthDate:     Required,
				MaritalStatus: Optional,
				Nationality:   Optional,
				Gender:        Expected,
				DriverLicense: Optional,
			},
			Format:            FormatRule{PaperSize: "A4", DateFormat: "YYYY/MM/DD", MaxPages: 2},
			Features:          Features{Stamp: true},
			AcceptedLanguages: []string{"ja", "en"},
		},
		{
			Code: "CN", Name: "China", Zone: ZoneAsiaPacific,
			Photo: PhotoRule{Allowed: true, Required: true, Recommended: true},
			PersonalInfo: PersonalInfoRule{
				Age:           Expected,
				BirthDate:     Expected,
				MaritalStatus: Optional,
				Nationality:   Expected,
				Gender:        Expected,
				DriverLicense: Optional,
			},
			Format:            FormatRule{PaperSize: "A4", DateFormat: "YYYY-MM-DD", MaxPages: 2},
			AcceptedLanguages: []string{"zh", "en"},
		},
		{
			Code: "IN", Name: "India", Zone: ZoneAsiaPacific,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD/MM/YYYY", MaxPages: 3},
			AcceptedLanguages: []string{"en", "hi"},
		},

		// Middle East & Africa
		{
			Code: "AE", Name: "United Arab Emirates", Zone: ZoneMiddleEastAfrica,
			Photo: PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo: PersonalInfoRule{
				Age:           Expected,
				BirthDate:     Expected,
				MaritalStatus: Optional,
				Nationality:   Expected,
				Gender:        Optional,
				DriverLicense: Optional,
			},
			Format:            FormatRule{PaperSize: "A4", DateFormat: "DD/MM/YYYY", MaxPages: 3},
			Features:          Features{VisaStatus: true},
			AcceptedLanguages: []string{"en", "ar"},
		},
		{
			Code: "MA", Name: "Morocco", Zone: ZoneMiddleEastAfrica,
			Photo:             PhotoRule{Allowed: true, Recommended: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"fr", "ar", "en"},
		},

		// Latin America
		{
			Code: "BR", Name: "Brazil", Zone: ZoneLatinAmerica,
			Photo:             PhotoRule{Allowed: true},
			PersonalInfo:      europeanDisclosure,
			Format:            formatEU,
			AcceptedLanguages: []string{"pt", "en"},
		},
	}
}
