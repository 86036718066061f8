package view

import "github.com/gosnews/gosnews/internal/lib/i18n"

// labels holds the interface text of the public pages. Content is
// translated elsewhere; these are the fixed words around it.
var labels = map[string]map[string]string{
	i18n.Uzbek: {
		"site":       "Hudud yangiliklari",
		"home":       "Bosh sahifa",
		"news":       "Yangiliklar",
		"featured":   "Asosiy yangiliklar",
		"latest":     "So'nggi yangiliklar",
		"related":    "O'xshash yangiliklar",
		"leaders":    "Rahbariyat",
		"guides":     "Qo'llanmalar",
		"partners":   "Hamkorlar",
		"dashboard":  "Statistika",
		"debts":      "Qarzdorlik",
		"search":     "Qidirish",
		"category":   "Kategoriya",
		"all":        "Barchasi",
		"views":      "Ko'rishlar",
		"region":     "Hudud",
		"phone":      "Telefon",
		"email":      "Pochta",
		"inn":        "STIR",
		"full_name":  "F.I.Sh.",
		"amount":     "Summa",
		"status":     "Holati",
		"type":       "Turi",
		"no_results": "Hech narsa topilmadi",
		"subscribe":  "Obuna bo'lish",
		"previous":   "Oldingi",
		"next":       "Keyingi",
		"watch":      "Ko'rish",
		"total_debt": "Umumiy qarz",
		"back_home":  "Bosh sahifaga qaytish",
	},
	i18n.Russian: {
		"site":       "Новости региона",
		"home":       "Главная",
		"news":       "Новости",
		"featured":   "Главные новости",
		"latest":     "Последние новости",
		"related":    "Похожие новости",
		"leaders":    "Руководство",
		"guides":     "Руководства",
		"partners":   "Партнёры",
		"dashboard":  "Статистика",
		"debts":      "Задолженность",
		"search":     "Поиск",
		"category":   "Категория",
		"all":        "Все",
		"views":      "Просмотры",
		"region":     "Регион",
		"phone":      "Телефон",
		"email":      "Почта",
		"inn":        "ИНН",
		"full_name":  "Ф.И.О.",
		"amount":     "Сумма",
		"status":     "Статус",
		"type":       "Тип",
		"no_results": "Ничего не найдено",
		"subscribe":  "Подписаться",
		"previous":   "Назад",
		"next":       "Далее",
		"watch":      "Смотреть",
		"total_debt": "Общий долг",
		"back_home":  "Вернуться на главную",
	},
	i18n.Karakalpak: {
		"site":       "Aymaq jan'alıqları",
		"home":       "Bas bet",
		"news":       "Jan'alıqlar",
		"featured":   "Tiykarg'ı jan'alıqlar",
		"latest":     "Son'g'ı jan'alıqlar",
		"related":    "Uqsas jan'alıqlar",
		"leaders":    "Basshılıq",
		"guides":     "Qollanbalar",
		"partners":   "Sheriklar",
		"dashboard":  "Statistika",
		"debts":      "Qarızdarlıq",
		"search":     "Izlew",
		"category":   "Kategoriya",
		"all":        "Barlıg'ı",
		"views":      "Ko'riwler",
		"region":     "Aymaq",
		"phone":      "Telefon",
		"email":      "Pochta",
		"inn":        "STIR",
		"full_name":  "F.A.A.",
		"amount":     "Summa",
		"status":     "Jag'dayı",
		"type":       "Tu'ri",
		"no_results": "Hesh na'rse tabılmadı",
		"subscribe":  "Jazılıw",
		"previous":   "Aldıng'ı",
		"next":       "Keyingi",
		"watch":      "Ko'riw",
		"total_debt": "Ulıwma qarız",
		"back_home":  "Bas betke qaytıw",
	},
}

// Label returns the interface text for key in lang, falling back to the
// default language and then to key itself.
func Label(lang, key string) string {
	if text, ok := labels[lang][key]; ok {
		return text
	}
	if text, ok := labels[i18n.Default()][key]; ok {
		return text
	}
	return key
}
