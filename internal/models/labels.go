package models

import "github.com/hadeelmohammed/portfolio-backend/internal/i18n"

// Labels — подписи интерфейса страницы по ключам.
type Labels map[string]*i18n.LocalizedText

// Resolve переводит все подписи на один язык.
func (l Labels) Resolve(lang i18n.Lang) map[string]string {
	out := make(map[string]string, len(l))
	for key, text := range l {
		out[key] = i18n.Resolve(text, lang)
	}
	return out
}

// ProjectDetailLabels — подписи страницы проекта.
var ProjectDetailLabels = Labels{
	"back":           i18n.Text("Back", "رجوع"),
	"client":         i18n.Text("Client", "العميل"),
	"year":           i18n.Text("Year", "السنة"),
	"category":       i18n.Text("Category", "التصنيف"),
	"tools":          i18n.Text("Tools", "الأدوات"),
	"design_process": i18n.Text("Design Process", "مراحل التصميم"),
	"visual_story":   i18n.Text("Visual Story", "الصور"),
	"images":         i18n.Text("images", "صورة"),
	"interested":     i18n.Text("Interested in a similar project?", "مهتم بمشروع مشابه؟"),
	"view_more":      i18n.Text("View More Work", "عرض المزيد من الأعمال"),
	"concept":        i18n.Text("Concept", "الفكرة"),
	"design_system":  i18n.Text("Design System", "نظام التصميم"),
	"execution":      i18n.Text("Execution", "التنفيذ"),
}

// AboutLabels — подписи страницы «Обо мне».
var AboutLabels = Labels{
	"about":          i18n.Text("About", "من أنا"),
	"philosophy":     i18n.Text("Philosophy", "الفلسفة"),
	"approach":       i18n.Text("Approach", "المنهج"),
	"experience":     i18n.Text("Experience", "الخبرات"),
	"skills":         i18n.Text("Skills", "المهارات"),
	"awards":         i18n.Text("Awards", "الجوائز"),
	"certifications": i18n.Text("Certifications", "الشهادات"),
	"education":      i18n.Text("Education", "التعليم"),
	"availability":   i18n.Text("Availability", "التوفر"),
	"cta":            i18n.Text("Have a project in mind?", "هل لديك مشروع في ذهنك؟"),
	"talk":           i18n.Text("Let's talk", "لنتحدث"),
}

// ContactLabels — подписи страницы контактов.
var ContactLabels = Labels{
	"email":        i18n.Text("Email", "البريد الإلكتروني"),
	"based_in":     i18n.Text("Based in", "الموقع"),
	"availability": i18n.Text("Availability", "التوفر"),
	"prefer_email": i18n.Text("Prefer email?", "تفضل البريد الإلكتروني؟"),
}
