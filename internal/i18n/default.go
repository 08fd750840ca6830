package i18n

import "triage-assistant/internal/domain"

// ruText traduce el vocabulario canonico al ruso.
var ruText = map[string]string{
	// condiciones
	"Viral infection":                   "Вирусная инфекция",
	"Bacterial infection":               "Бактериальная инфекция",
	"Influenza (flu)":                   "Грипп",
	"COVID-19":                          "COVID-19",
	"Common cold":                       "Простуда",
	"Pneumonia":                         "Пневмония",
	"Bronchitis":                        "Бронхит",
	"Pharyngitis":                       "Фарингит",
	"Strep throat (tonsillitis)":        "Ангина (стрептококк)",
	"ARI (acute respiratory infection)": "ОРВИ",
	"Migraine":                          "Мигрень",
	"Tension headache":                  "Напряжённая головная боль",
	"Sinusitis":                         "Синусит",
	"Angina":                            "Стенокардия",
	"Myocardial infarction":             "Инфаркт миокарда",
	"Musculoskeletal pain":              "Мышечно-скелетная боль",
	"Anxiety disorder":                  "Тревожное расстройство",
	"Asthma":                            "Астма",
	"Pulmonary embolism":                "ТЭЛА",
	"Heart failure":                     "Сердечная недостаточность",
	"Gastroenteritis":                   "Гастроэнтерит",
	"Appendicitis":                      "Аппендицит",
	"Biliary colic (gallstones)":        "ЖКБ/колика",
	"Allergic dermatitis":               "Аллергический дерматит",
	"Viral exanthem":                    "Вирусная экзантема",
	"Foodborne illness":                 "Пищевая токсикоинфекция",
	"Irritable bowel syndrome":          "Синдром раздражённого кишечника",
	"Gastritis":                         "Гастрит",
	"Pregnancy":                         "Беременность",
	"Nonspecific symptoms":              "Неспецифические симптомы",

	// acciones
	"Drink more fluids": "Пейте больше жидкости",
	"Antipyretics (paracetamol/ibuprofen) if needed": "Жаропонижающее (парацетамол/ибупрофен) при необходимости",
	"Rest and monitor temperature":                   "Отдых и контроль температуры",
	"Warm drinks":                                    "Тёплое питьё",
	"Rest":                                           "Покой",
	"If productive cough: mucolytics as indicated":   "При влажном кашле: муколитики по показаниям",
	"Gargling":                                       "Полоскания",
	"Topical antiseptics":                            "Топические антисептики",
	"Hydration":                                      "Гидратация",
	"NSAIDs if needed":                               "НПВС по необходимости",
	"Immediate risk assessment":                      "Немедленно оценить риски",
	"Reduce physical activity":                       "Ограничить нагрузку",
	"Urgent evaluation":                              "Срочная оценка состояния",
	"Small frequent sips":                            "Дробное питьё",
	"Light diet":                                     "Лёгкая диета",
	"Avoid irritants":                                "Избегать раздражителей",
	"Antihistamines if needed":                       "Антигистаминные при необходимости",
	"Oral rehydration":                               "Оральная регидратация",
	"BRAT diet":                                      "Диета BRAT",
	"Avoid fatty foods":                              "Избегать жирной пищи",
	"Observation":                                    "Наблюдение",
	"See a doctor if worsening":                      "Консультация врача при ухудшении",

	// preguntas
	"What is the highest temperature?":  "Какая максимальная температура?",
	"How many days does fever persist?": "Сколько дней держится температура?",
	"Any chills?":                       "Есть ли озноб?",
	"Dry or productive cough?":          "Сухой или влажный кашель?",
	"Any shortness of breath?":          "Есть ли одышка?",
	"Any blood in sputum?":              "Есть ли кровь в мокроте?",
	"Any tonsillar exudate?":            "Есть ли налёт на миндалинах?",
	"High fever present?":               "Есть ли высокая температура?",
	"Is the pain pulsating?":            "Боль пульсирующая?",
	"Nausea/photophobia?":               "Тошнота/светобоязнь?",
	"Relation to exertion?":             "Связь с нагрузкой?",
	"Radiation to arm/jaw?":             "Иррадиация в руку/челюсть?",
	"Shortness of breath?":              "Одышка?",
	"Sweating/nausea?":                  "Потливость/тошнота?",
	"Wheezing?":                         "Свистящее дыхание?",
	"Edema?":                            "Отёки?",
	"Chest pain?":                       "Боль в груди?",
	"Pain location?":                    "Локализация боли?",
	"Relation to meals?":                "Связь с приёмом пищи?",
	"Nausea/vomiting/diarrhea?":         "Тошнота/рвота/диарея?",
	"Itching?":                          "Зуд?",
	"New meds/cosmetics?":               "Новые лекарства/косметика?",
	"Blood in stool?":                   "Кровь в стуле?",
	"Fever?":                            "Температура?",
	"Recent travel?":                    "Недавние поездки?",
	"Relation to food?":                 "Связь с едой?",
	"Possible pregnancy?":               "Беременность возможна?",

	// banderas rojas
	">39°C for more than 3 days":         "Температура > 39°C более 3 дней",
	"Severe headache and neck stiffness": "Сильная головная боль и ригидность шеи",
	"Shortness of breath":                "Одышка",
	"Hemoptysis":                         "Кровохаркание",
	"Chest pain":                         "Боль в груди",
	"Breathing difficulty":               "Затруднение дыхания",
	"Severe swallowing difficulty":       "Сильное затруднение глотания",
	"Sudden worst-ever pain":             "Внезапная сильнейшая боль",
	"Focal neurological deficit":         "Очаговый неврологический дефицит",
	"Pressing chest pain":                "Давящая боль в груди",
	"Cold sweat":                         "Холодный пот",
	"Syncope":                            "Обморок",
	"Dyspnea at rest":                    "Одышка в покое",
	"Low oxygen saturation (if known)":   "Сатурация низкая (если известна)",
	"Rigid abdomen":                      "Живот напряжён",
	"Blood in stool/vomit":               "Кровь в стуле/рвоте",
	"High fever":                         "Высокая температура",
	"Facial/tongue swelling":             "Отёк лица/языка",
	"Signs of dehydration":               "Признаки обезвоживания",
	"Blood in stool":                     "Кровь в стуле",
	"Intractable vomiting":               "Неукротимая рвота",

	// textos fijos del motor
	"This is not medical advice. Consult a doctor if in doubt.":         "Это не является медицинским советом. Обратитесь к врачу при сомнениях.",
	"If symptoms are severe, call an ambulance or seek emergency care.": "При тяжёлых симптомах вызовите скорую помощь или обратитесь за неотложной помощью.",
	"Key symptoms matched the rules":                                    "Совпадение ключевых симптомов по правилам",
	"Not enough rule matches":                                           "Недостаточно совпадений по правилам",
}

// uiText son las claves de interfaz usadas por la API y la CLI.
var uiText = map[string]map[domain.Locale]string{
	"title":               {domain.LocaleEN: "AI Medical Assistant", domain.LocaleRU: "AI Medical Assistant"},
	"disclaimer":          {domain.LocaleEN: "Demo assistant. Not medical advice.", domain.LocaleRU: "Демонстрационный ассистент. Не является медицинским советом."},
	"age":                 {domain.LocaleEN: "Age", domain.LocaleRU: "Возраст"},
	"sex":                 {domain.LocaleEN: "Sex", domain.LocaleRU: "Пол"},
	"duration":            {domain.LocaleEN: "Duration (days)", domain.LocaleRU: "Длительность (дней)"},
	"severity":            {domain.LocaleEN: "Severity (1-10)", domain.LocaleRU: "Тяжесть (1-10)"},
	"notes":               {domain.LocaleEN: "Notes", domain.LocaleRU: "Примечания"},
	"symptoms_csv":        {domain.LocaleEN: "Symptoms comma-separated", domain.LocaleRU: "Симптомы через запятую"},
	"triage_results":      {domain.LocaleEN: "Triage Results", domain.LocaleRU: "Результаты триажа"},
	"risk_level":          {domain.LocaleEN: "Risk level", domain.LocaleRU: "Уровень риска"},
	"possible_conditions": {domain.LocaleEN: "Possible conditions", domain.LocaleRU: "Возможные причины"},
	"self_care":           {domain.LocaleEN: "Self-care", domain.LocaleRU: "Самопомощь"},
	"doctor_questions":    {domain.LocaleEN: "Questions for doctor", domain.LocaleRU: "Вопросы врачу"},
	"recommended_actions": {domain.LocaleEN: "Recommended actions", domain.LocaleRU: "Рекомендуемые действия"},
	"ai_recommendations":  {domain.LocaleEN: "AI Recommendations", domain.LocaleRU: "Рекомендации ИИ"},
	"llm_offline": {
		domain.LocaleEN: "LLM is not configured (no OpenAI key or Ollama not running). Showing triage only.",
		domain.LocaleRU: "LLM не настроен (нет ключа/OpenAI или не запущен Ollama). Показаны только результаты триажа.",
	},
	"rate_limited": {
		domain.LocaleEN: "Too many AI requests. Try again later.",
		domain.LocaleRU: "Слишком много запросов к ИИ. Попробуйте позже.",
	},
	"faq":            {domain.LocaleEN: "FAQ", domain.LocaleRU: "FAQ"},
	"faq_search":     {domain.LocaleEN: "Search FAQ", domain.LocaleRU: "Поиск по FAQ"},
	"invalid_input":  {domain.LocaleEN: "Invalid input", domain.LocaleRU: "Некорректные данные"},
	"risk.low":       {domain.LocaleEN: "low", domain.LocaleRU: "низкий"},
	"risk.moderate":  {domain.LocaleEN: "moderate", domain.LocaleRU: "умеренный"},
	"risk.high":      {domain.LocaleEN: "high", domain.LocaleRU: "высокий"},
	"risk.emergency": {domain.LocaleEN: "emergency", domain.LocaleRU: "экстренный"},
}

var defaultSuggestions = map[domain.Locale][]string{
	domain.LocaleRU: {
		"температура", "кашель", "головная боль", "боль в горле", "одышка",
		"боль в груди", "боль в животе", "сыпь", "диарея", "тошнота",
	},
	domain.LocaleEN: {
		"fever", "cough", "headache", "sore throat", "shortness of breath",
		"chest pain", "abdominal pain", "rash", "diarrhea", "nausea",
	},
}

// Default devuelve el catalogo incorporado (en, ru).
func Default() *Catalog {
	entries := make(map[string]map[domain.Locale]string, len(ruText)+len(uiText))
	for en, ru := range ruText {
		entries[en] = map[domain.Locale]string{domain.LocaleEN: en, domain.LocaleRU: ru}
	}
	for key, byLocale := range uiText {
		entries[key] = byLocale
	}
	return NewCatalog(entries, defaultSuggestions)
}
