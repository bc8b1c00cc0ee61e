// Package content holds the static screens of the bot: display text keyed by
// screen id plus the inline menu attached to each screen. No logic lives here.
package content

// ScreenID names a unit of static display content.
type ScreenID string

const (
	ScreenWelcome      ScreenID = "welcome"
	ScreenHelp         ScreenID = "help"
	ScreenMenu         ScreenID = "menu"
	ScreenHowItWorks   ScreenID = "how_it_works"
	ScreenCases        ScreenID = "cases"
	ScreenCaseEdu      ScreenID = "case_education"
	ScreenCaseRealty   ScreenID = "case_realestate"
	ScreenCaseServices ScreenID = "case_services"
	ScreenFAQ          ScreenID = "faq"
	ScreenFAQLegal     ScreenID = "faq_legal"
	ScreenFAQECP       ScreenID = "faq_ecp"
	ScreenFAQSecurity  ScreenID = "faq_security"
	ScreenAskName      ScreenID = "ask_name"
	ScreenAskPhone     ScreenID = "ask_phone"
	ScreenDoneTemplate ScreenID = "done_template"
	ScreenDoneDemo     ScreenID = "done_demo"
	ScreenNameInvalid  ScreenID = "name_invalid"
	ScreenPhoneInvalid ScreenID = "phone_invalid"
	ScreenFarewell     ScreenID = "farewell"
	ScreenFallback     ScreenID = "fallback"
)

// Button is a single inline menu option. Data is optional callback payload.
type Button struct {
	Label string
	Key   string
	Data  string
}

// Menu is rows of inline buttons attached to a screen.
type Menu [][]Button
