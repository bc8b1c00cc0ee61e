package content

import (
	"fmt"

	"github.com/signcontract/leadbot/internal/session"
)

const welcomeText = `👋 <b>Добро пожаловать в SignContract!</b>

Мы помогаем подписывать договоры онлайн — без бумаги, курьеров и встреч.

Чтобы показать самое полезное именно для вас, выберите, кто вы:`

const helpText = `ℹ️ <b>Справка</b>

/start — начать сначала и выбрать сегмент
/menu — открыть главное меню
/help — это сообщение

В меню вы можете узнать, как работает сервис, посмотреть примеры клиентов, получить шаблон договора или заказать демонстрацию.`

const howItWorksText = `❓ <b>Как это работает?</b>

1️⃣ Вы загружаете договор или выбираете готовый шаблон.
2️⃣ Отправляете контрагенту ссылку на подписание.
3️⃣ Контрагент подписывает договор онлайн с телефона или компьютера.
4️⃣ Обе стороны получают юридически значимый документ.

Весь процесс занимает считанные минуты.`

const casesIndexText = `💼 <b>Примеры клиентов</b>

Выберите сферу, чтобы посмотреть, как SignContract работает у реальных клиентов:`

const caseEducationText = `🎓 <b>Образование</b>

Онлайн-школа перевела договоры с учениками в SignContract: оформление ученика сократилось с 2 дней до 15 минут, а доля подписанных договоров выросла на 30%.`

const caseRealestateText = `🏠 <b>Недвижимость</b>

Агентство недвижимости подписывает договоры аренды и бронирования дистанционно. Сделки больше не срываются из-за того, что клиент не успел приехать в офис.`

const caseServicesText = `💼 <b>Услуги</b>

Студия дизайна оформляет договоры и акты с заказчиками в один клик. Бухгалтерия получает закрывающие документы без напоминаний.`

const faqIndexText = `🤔 <b>Ответы на вопросы</b>

Выберите вопрос:`

const faqLegalText = `⚖️ <b>Законно ли это?</b>

Да. Электронные договоры имеют юридическую силу в соответствии с ГК РФ и 63-ФЗ «Об электронной подписи». Суды принимают такие документы наравне с бумажными.`

const faqECPText = `🔐 <b>Нужна ли ЭЦП?</b>

Нет, выпускать квалифицированную электронную подпись не требуется. Подписание подтверждается через СМС-код — это простая электронная подпись, достаточная для большинства договоров.`

const faqSecurityText = `🛡 <b>Безопасно ли?</b>

Данные передаются по шифрованному каналу и хранятся на серверах в России. Каждый шаг подписания фиксируется в протоколе, который прикладывается к договору.`

const getTemplateText = `📄 <b>Отличный выбор!</b>

Мы подготовим для вас шаблон договора и отправим его вместе с инструкцией.

<b>Как вас зовут?</b>`

const orderDemoText = `🎯 <b>Отличный выбор!</b>

Мы покажем, как SignContract решит именно вашу задачу — демонстрация занимает 15 минут.

<b>Как вас зовут?</b>`

const actionTemplateText = `✅ <b>Спасибо! Заявка на шаблон принята.</b>

Наш специалист свяжется с вами в ближайшее время и отправит шаблон договора с инструкцией по подписанию.`

const actionDemoText = `✅ <b>Спасибо! Заявка на демонстрацию принята.</b>

Наш специалист свяжется с вами в ближайшее время, чтобы согласовать удобное время демонстрации.`

const nameInvalidText = `❌ Пожалуйста, введите корректное имя (только буквы, не менее 2 символов).`

const phoneInvalidText = `❌ Введите корректный номер телефона в формате +7XXXXXXXXXX.`

const exitText = `👋 Спасибо, что заглянули!

Если передумаете — просто напишите /start, и мы продолжим с начала.`

const fallbackText = `🤔 Не совсем понял вас. Воспользуйтесь меню ниже или напишите /start для начала.`

// segmentBodies is the main menu copy per prospect segment.
var segmentBodies = map[session.Segment]string{
	session.SegmentIP: `👨‍💼 <b>SignContract для ИП</b>

Подписывайте договоры с клиентами и подрядчиками онлайн: без печати, сканов и поездок. Выберите, что вам интересно:`,
	session.SegmentLawyer: `⚖️ <b>SignContract для юристов</b>

Контролируйте договорную работу в одном окне: версии, сроки и протокол подписания каждого документа. Выберите, что вам интересно:`,
	session.SegmentHR: `👥 <b>SignContract для HR</b>

Оформляйте сотрудников и подрядчиков дистанционно: договоры, NDA и акты подписываются за минуты. Выберите, что вам интересно:`,
	session.SegmentOther: `🔄 <b>SignContract</b>

Электронное подписание договоров для любого бизнеса. Выберите, что вам интересно:`,
}

// MenuBody returns the main menu text for a segment; unset falls back to the
// generic copy, mirroring how the bot behaves before a segment is chosen.
func MenuBody(seg session.Segment) string {
	if body, ok := segmentBodies[seg]; ok {
		return body
	}
	return segmentBodies[session.SegmentOther]
}

// AskPhoneBody builds the personalized phone prompt shown after a valid name.
func AskPhoneBody(name string, action session.Action) string {
	actionText := "заказа демонстрации"
	if action == session.ActionTemplate {
		actionText = "получения шаблона"
	}
	return fmt.Sprintf(`👍 Приятно познакомиться, %s!

<b>Теперь введите ваш номер телефона для %s:</b>

Например: +7 999 123-45-67`, name, actionText)
}

// AskNameBody returns the name prompt for the requested action.
func AskNameBody(action session.Action) string {
	if action == session.ActionTemplate {
		return getTemplateText
	}
	return orderDemoText
}

var screenTexts = map[ScreenID]string{
	ScreenWelcome:      welcomeText,
	ScreenHelp:         helpText,
	ScreenHowItWorks:   howItWorksText,
	ScreenCases:        casesIndexText,
	ScreenCaseEdu:      caseEducationText,
	ScreenCaseRealty:   caseRealestateText,
	ScreenCaseServices: caseServicesText,
	ScreenFAQ:          faqIndexText,
	ScreenFAQLegal:     faqLegalText,
	ScreenFAQECP:       faqECPText,
	ScreenFAQSecurity:  faqSecurityText,
	ScreenDoneTemplate: actionTemplateText,
	ScreenDoneDemo:     actionDemoText,
	ScreenNameInvalid:  nameInvalidText,
	ScreenPhoneInvalid: phoneInvalidText,
	ScreenFarewell:     exitText,
	ScreenFallback:     fallbackText,
}

// Body returns the static text of a screen. Screens with dynamic bodies
// (menu, ask_name, ask_phone) are resolved via their dedicated helpers.
func Body(id ScreenID) (string, bool) {
	text, ok := screenTexts[id]
	return text, ok
}

// informational screens may be opened from the main menu at any time.
var informational = map[ScreenID]struct{}{
	ScreenHowItWorks:   {},
	ScreenCases:        {},
	ScreenCaseEdu:      {},
	ScreenCaseRealty:   {},
	ScreenCaseServices: {},
	ScreenFAQ:          {},
	ScreenFAQLegal:     {},
	ScreenFAQECP:       {},
	ScreenFAQSecurity:  {},
}

// IsInformational reports whether the screen is a static browse-only screen.
func IsInformational(id ScreenID) bool {
	_, ok := informational[id]
	return ok
}

// CaseScreen resolves a case callback payload to its detail screen.
func CaseScreen(payload string) ScreenID {
	switch payload {
	case "education":
		return ScreenCaseEdu
	case "realestate":
		return ScreenCaseRealty
	case "services":
		return ScreenCaseServices
	}
	return ""
}

// FAQScreen resolves a faq callback payload to its detail screen.
func FAQScreen(payload string) ScreenID {
	switch payload {
	case "legal":
		return ScreenFAQLegal
	case "ecp":
		return ScreenFAQECP
	case "security":
		return ScreenFAQSecurity
	}
	return ""
}
