package i18n

// dictionaries holds the fixed UI strings of the public pages per locale.
var dictionaries = map[string]map[string]string{
	"es": {
		"nav.home":         "Inicio",
		"nav.projects":     "Proyectos",
		"nav.about":        "Estudio",
		"nav.services":     "Servicios",
		"nav.contact":      "Contacto",
		"home.featured":    "Proyectos destacados",
		"home.viewAll":     "Ver todos los proyectos",
		"projects.title":   "Proyectos",
		"projects.filter":  "Filtrar por tipología",
		"about.title":      "El estudio",
		"services.title":   "Servicios",
		"contact.title":    "Contacto",
		"contact.send":     "Enviar consulta",
		"contact.success":  "Gracias por tu consulta. Te responderemos a la brevedad.",
		"contact.failure":  "No pudimos enviar tu consulta. Intentá nuevamente.",
	},
	"en": {
		"nav.home":         "Home",
		"nav.projects":     "Projects",
		"nav.about":        "Studio",
		"nav.services":     "Services",
		"nav.contact":      "Contact",
		"home.featured":    "Featured projects",
		"home.viewAll":     "View all projects",
		"projects.title":   "Projects",
		"projects.filter":  "Filter by typology",
		"about.title":      "The studio",
		"services.title":   "Services",
		"contact.title":    "Contact",
		"contact.send":     "Send inquiry",
		"contact.success":  "Thank you for your inquiry. We will get back to you shortly.",
		"contact.failure":  "We could not send your inquiry. Please try again.",
	},
	"zh": {
		"nav.home":         "首页",
		"nav.projects":     "项目",
		"nav.about":        "工作室",
		"nav.services":     "服务",
		"nav.contact":      "联系",
		"home.featured":    "精选项目",
		"home.viewAll":     "查看全部项目",
		"projects.title":   "项目",
		"projects.filter":  "按类型筛选",
		"about.title":      "工作室",
		"services.title":   "服务",
		"contact.title":    "联系我们",
		"contact.send":     "发送咨询",
		"contact.success":  "感谢您的咨询，我们会尽快回复。",
		"contact.failure":  "咨询发送失败，请重试。",
	},
	"ja": {
		"nav.home":         "ホーム",
		"nav.projects":     "プロジェクト",
		"nav.about":        "スタジオ",
		"nav.services":     "サービス",
		"nav.contact":      "お問い合わせ",
		"home.featured":    "注目のプロジェクト",
		"home.viewAll":     "すべてのプロジェクトを見る",
		"projects.title":   "プロジェクト",
		"projects.filter":  "タイポロジーで絞り込む",
		"about.title":      "スタジオについて",
		"services.title":   "サービス",
		"contact.title":    "お問い合わせ",
		"contact.send":     "送信",
		"contact.success":  "お問い合わせありがとうございます。折り返しご連絡いたします。",
		"contact.failure":  "送信できませんでした。もう一度お試しください。",
	},
	"pt": {
		"nav.home":         "Início",
		"nav.projects":     "Projetos",
		"nav.about":        "Estúdio",
		"nav.services":     "Serviços",
		"nav.contact":      "Contato",
		"home.featured":    "Projetos em destaque",
		"home.viewAll":     "Ver todos os projetos",
		"projects.title":   "Projetos",
		"projects.filter":  "Filtrar por tipologia",
		"about.title":      "O estúdio",
		"services.title":   "Serviços",
		"contact.title":    "Contato",
		"contact.send":     "Enviar consulta",
		"contact.success":  "Obrigado pela sua consulta. Responderemos em breve.",
		"contact.failure":  "Não foi possível enviar sua consulta. Tente novamente.",
	},
}

// Messages returns the UI dictionary for a locale, falling back to the
// default locale for unknown ones.
func Messages(locale string) map[string]string {
	if dict, ok := dictionaries[locale]; ok {
		return dict
	}
	return dictionaries[DefaultLocale]
}
