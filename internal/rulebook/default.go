package rulebook

// Tabla simplificada con fines educativos. No es consejo medico.
var defaultRules = []Rule{
	{
		Keyword: "fever",
		Conditions: []ConditionWeight{
			{Name: "Viral infection", Weight: 2},
			{Name: "Bacterial infection", Weight: 1},
			{Name: "Influenza (flu)", Weight: 2},
			{Name: "COVID-19", Weight: 2},
		},
		Questions: []string{"What is the highest temperature?", "How many days does fever persist?", "Any chills?"},
		Actions: []string{
			"Drink more fluids",
			"Antipyretics (paracetamol/ibuprofen) if needed",
			"Rest and monitor temperature",
		},
		RedFlags: []string{">39°C for more than 3 days", "Severe headache and neck stiffness"},
	},
	{
		Keyword: "cough",
		Conditions: []ConditionWeight{
			{Name: "Common cold", Weight: 1},
			{Name: "Influenza (flu)", Weight: 2},
			{Name: "COVID-19", Weight: 2},
			{Name: "Pneumonia", Weight: 2},
			{Name: "Bronchitis", Weight: 1},
		},
		Questions: []string{"Dry or productive cough?", "Any shortness of breath?", "Any blood in sputum?"},
		Actions:   []string{"Warm drinks", "Rest", "If productive cough: mucolytics as indicated"},
		RedFlags:  []string{"Shortness of breath", "Hemoptysis", "Chest pain"},
	},
	{
		Keyword: "sore throat",
		Conditions: []ConditionWeight{
			{Name: "Pharyngitis", Weight: 2},
			{Name: "Strep throat (tonsillitis)", Weight: 2},
			{Name: "ARI (acute respiratory infection)", Weight: 1},
		},
		Questions: []string{"Any tonsillar exudate?", "High fever present?"},
		Actions:   []string{"Gargling", "Warm drinks", "Topical antiseptics"},
		RedFlags:  []string{"Breathing difficulty", "Severe swallowing difficulty"},
	},
	{
		Keyword: "headache",
		Conditions: []ConditionWeight{
			{Name: "Migraine", Weight: 2},
			{Name: "Tension headache", Weight: 2},
			{Name: "Sinusitis", Weight: 1},
		},
		Questions: []string{"Is the pain pulsating?", "Nausea/photophobia?", "Relation to exertion?"},
		Actions:   []string{"Rest", "Hydration", "NSAIDs if needed"},
		RedFlags:  []string{"Sudden worst-ever pain", "Focal neurological deficit"},
	},
	{
		Keyword: "chest pain",
		Conditions: []ConditionWeight{
			{Name: "Angina", Weight: 2},
			{Name: "Myocardial infarction", Weight: 3},
			{Name: "Musculoskeletal pain", Weight: 1},
			{Name: "Anxiety disorder", Weight: 1},
		},
		Questions: []string{"Radiation to arm/jaw?", "Shortness of breath?", "Sweating/nausea?"},
		Actions:   []string{"Immediate risk assessment", "Reduce physical activity"},
		RedFlags:  []string{"Pressing chest pain", "Shortness of breath", "Cold sweat", "Syncope"},
	},
	{
		Keyword: "shortness of breath",
		Conditions: []ConditionWeight{
			{Name: "Pneumonia", Weight: 2},
			{Name: "Asthma", Weight: 2},
			{Name: "Pulmonary embolism", Weight: 3},
			{Name: "Heart failure", Weight: 2},
		},
		Questions: []string{"Wheezing?", "Edema?", "Chest pain?"},
		Actions:   []string{"Urgent evaluation"},
		RedFlags:  []string{"Dyspnea at rest", "Low oxygen saturation (if known)"},
	},
	{
		Keyword: "abdominal pain",
		Conditions: []ConditionWeight{
			{Name: "Gastroenteritis", Weight: 1},
			{Name: "Appendicitis", Weight: 3},
			{Name: "Biliary colic (gallstones)", Weight: 2},
		},
		Questions: []string{"Pain location?", "Relation to meals?", "Nausea/vomiting/diarrhea?"},
		Actions:   []string{"Small frequent sips", "Light diet"},
		RedFlags:  []string{"Rigid abdomen", "Blood in stool/vomit", "High fever"},
	},
	{
		Keyword: "rash",
		Conditions: []ConditionWeight{
			{Name: "Allergic dermatitis", Weight: 2},
			{Name: "Viral exanthem", Weight: 1},
		},
		Questions: []string{"Itching?", "New meds/cosmetics?"},
		Actions:   []string{"Avoid irritants", "Antihistamines if needed"},
		RedFlags:  []string{"Facial/tongue swelling", "Breathing difficulty"},
	},
	{
		Keyword: "diarrhea",
		Conditions: []ConditionWeight{
			{Name: "Gastroenteritis", Weight: 2},
			{Name: "Foodborne illness", Weight: 2},
			{Name: "Irritable bowel syndrome", Weight: 1},
		},
		Questions: []string{"Blood in stool?", "Fever?", "Recent travel?"},
		Actions:   []string{"Oral rehydration", "BRAT diet"},
		RedFlags:  []string{"Signs of dehydration", "Blood in stool"},
	},
	{
		Keyword: "nausea",
		Conditions: []ConditionWeight{
			{Name: "Gastritis", Weight: 1},
			{Name: "Gastroenteritis", Weight: 1},
			{Name: "Pregnancy", Weight: 1},
		},
		Questions: []string{"Relation to food?", "Possible pregnancy?"},
		Actions:   []string{"Small frequent sips", "Avoid fatty foods"},
		RedFlags:  []string{"Intractable vomiting", "Signs of dehydration"},
	},
}

// Frases en ruso aceptadas como entrada, mapeadas al vocabulario canonico.
var defaultSynonyms = []Synonym{
	{Phrase: "температура", Keyword: "fever"},
	{Phrase: "жар", Keyword: "fever"},
	{Phrase: "лихорадка", Keyword: "fever"},
	{Phrase: "кашель", Keyword: "cough"},
	{Phrase: "боль в горле", Keyword: "sore throat"},
	{Phrase: "горло", Keyword: "sore throat"},
	{Phrase: "головная боль", Keyword: "headache"},
	{Phrase: "боль в груди", Keyword: "chest pain"},
	{Phrase: "одышка", Keyword: "shortness of breath"},
	{Phrase: "тяжело дышать", Keyword: "shortness of breath"},
	{Phrase: "боль в животе", Keyword: "abdominal pain"},
	{Phrase: "живот", Keyword: "abdominal pain"},
	{Phrase: "сыпь", Keyword: "rash"},
	{Phrase: "диарея", Keyword: "diarrhea"},
	{Phrase: "понос", Keyword: "diarrhea"},
	{Phrase: "тошнота", Keyword: "nausea"},
	{Phrase: "рвота", Keyword: "nausea"},
}

var defaultEmergencyKeywords = []string{"chest pain", "shortness of breath"}

// Default devuelve el Book incorporado. Cada llamada construye un valor nuevo.
func Default() *Book {
	b, err := New(defaultRules, defaultSynonyms, defaultEmergencyKeywords)
	if err != nil {
		// La tabla incorporada es constante; un error aca es un bug de datos.
		panic(err)
	}
	return b
}
