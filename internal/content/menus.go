package content

// Callback keys understood by the bot. Payload-carrying keys encode the
// payload in Button.Data and are split at the transport boundary.
const (
	KeySegment    = "segment"
	KeyHowItWorks = "how_it_works"
	KeyCases      = "cases"
	KeyCase       = "case"
	KeyFAQ        = "faq"
	KeyFAQItem    = "faq_item"
	KeyTemplate   = "get_template"
	KeyDemo       = "order_demo"
	KeyBackToMenu = "back_to_menu"
	KeyExit       = "exit"
)

var segmentMenu = Menu{
	{{Label: "👨‍💼 Я Индивидуальный Предприниматель", Key: KeySegment, Data: "ip"}},
	{{Label: "⚖️ Я юрист", Key: KeySegment, Data: "lawyer"}},
	{{Label: "👥 Я HR-специалист", Key: KeySegment, Data: "hr"}},
	{{Label: "🔄 Другое", Key: KeySegment, Data: "other"}},
}

var mainMenu = Menu{
	{{Label: "❓ Как это работает?", Key: KeyHowItWorks}},
	{{Label: "💼 Примеры клиентов", Key: KeyCases}},
	{{Label: "🤔 Ответы на вопросы", Key: KeyFAQ}},
	{{Label: "📄 Получить шаблон договора", Key: KeyTemplate}},
	{{Label: "🎯 Заказать демонстрацию", Key: KeyDemo}},
	{{Label: "❌ Выйти", Key: KeyExit}},
}

var casesMenu = Menu{
	{{Label: "🎓 Образование", Key: KeyCase, Data: "education"}},
	{{Label: "🏠 Недвижимость", Key: KeyCase, Data: "realestate"}},
	{{Label: "💼 Услуги", Key: KeyCase, Data: "services"}},
	{{Label: "⬅️ Назад", Key: KeyBackToMenu}},
}

var faqMenu = Menu{
	{{Label: "⚖️ Законно ли это?", Key: KeyFAQItem, Data: "legal"}},
	{{Label: "🔐 Нужна ли ЭЦП?", Key: KeyFAQItem, Data: "ecp"}},
	{{Label: "🛡 Безопасно ли?", Key: KeyFAQItem, Data: "security"}},
	{{Label: "⬅️ Назад", Key: KeyBackToMenu}},
}

var backMenu = Menu{
	{{Label: "⬅️ Назад в меню", Key: KeyBackToMenu}},
}

var screenMenus = map[ScreenID]Menu{
	ScreenWelcome:      segmentMenu,
	ScreenMenu:         mainMenu,
	ScreenHowItWorks:   backMenu,
	ScreenCases:        casesMenu,
	ScreenCaseEdu:      backMenu,
	ScreenCaseRealty:   backMenu,
	ScreenCaseServices: backMenu,
	ScreenFAQ:          faqMenu,
	ScreenFAQLegal:     backMenu,
	ScreenFAQECP:       backMenu,
	ScreenFAQSecurity:  backMenu,
	ScreenAskName:      backMenu,
	ScreenAskPhone:     backMenu,
	ScreenDoneTemplate: mainMenu,
	ScreenDoneDemo:     mainMenu,
	ScreenFallback:     mainMenu,
}

// MenuFor returns the inline menu attached to a screen, or nil when the
// screen renders without buttons (farewell, validation errors).
func MenuFor(id ScreenID) Menu {
	return screenMenus[id]
}
