// Package bot wires the conversation engine to Telegram: commands,
// callback decoding, and reply rendering.
package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/signcontract/leadbot/internal/config"
	"github.com/signcontract/leadbot/internal/content"
	"github.com/signcontract/leadbot/internal/conversation"
	"github.com/signcontract/leadbot/internal/lead"
	"github.com/signcontract/leadbot/internal/logger"
	"github.com/signcontract/leadbot/internal/telegram"
	"github.com/signcontract/leadbot/internal/telegram/helpers"
	"github.com/signcontract/leadbot/internal/telegram/middleware"
)

// App holds the wiring between transport and domain.
type App struct {
	cfg    *config.Config
	engine *conversation.Engine
	stats  lead.StatsProvider
}

// New builds the application wiring.
func New(cfg *config.Config, engine *conversation.Engine, stats lead.StatsProvider) *App {
	return &App{cfg: cfg, engine: engine, stats: stats}
}

// Registry returns the command registry with all bot commands bound.
func (a *App) Registry() *telegram.Registry {
	reg := telegram.NewRegistry()

	reg.RegisterCommand("/start", telegram.Command{
		Handler:     a.handleStart,
		Description: "Начать разговор",
	})
	reg.RegisterCommand("/help", telegram.Command{
		Handler:     a.handleHelp,
		Description: "Справка",
	})
	reg.RegisterCommand("/menu", telegram.Command{
		Handler:     a.handleMenu,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/stats", telegram.Command{
		Handler: middleware.WithAdminCheck(middleware.AdminOptions{
			IsAdmin: a.cfg.Telegram.IsAdmin,
			OnReject: func(c tele.Context) error {
				return helpers.SendHTML(c, statsDeniedText)
			},
		}, a.handleStats),
		Description: "Статистика лидов",
		AdminOnly:   true,
	})

	for _, key := range []string{
		content.KeySegment,
		content.KeyHowItWorks,
		content.KeyCases,
		content.KeyCase,
		content.KeyFAQ,
		content.KeyFAQItem,
		content.KeyTemplate,
		content.KeyDemo,
		content.KeyBackToMenu,
		content.KeyExit,
	} {
		key := key
		if err := reg.RegisterCallback(key, func(c tele.Context) error {
			return a.handleCallback(c, key)
		}); err != nil {
			logger.Warn(logger.Background(), "bot", "register.callback",
				slog.String("cb_key", key),
				slog.String("err", err.Error()),
			)
		}
	}
	reg.SetCallbackNotFound(a.handleUnknownCallback)

	reg.SetTextFallback(a.handleText)
	return reg
}

// Routes returns non-command endpoints. Free text is wired through the
// registry's text fallback; callbacks dispatch by their registry key.
func (a *App) Routes(reg *telegram.Registry) []telegram.Route {
	return []telegram.Route{
		{Endpoint: tele.OnCallback, Handler: func(c tele.Context) error {
			key, _ := middleware.ParseCallback(c.Callback())
			if h, ok := reg.GetCallback(key); ok {
				return h(c)
			}
			return reg.CallbackNotFound()(c)
		}},
	}
}

func (a *App) handleStart(c tele.Context) error {
	ctx := helpers.WithHandler(c, "start")
	reply := a.engine.Handle(ctx, identityFrom(c), conversation.Start{})
	return sendReply(c, reply)
}

func (a *App) handleHelp(c tele.Context) error {
	helpers.WithHandler(c, "help")
	text, _ := content.Body(content.ScreenHelp)
	return helpers.SendHTML(c, text)
}

func (a *App) handleMenu(c tele.Context) error {
	ctx := helpers.WithHandler(c, "menu")
	reply := a.engine.Handle(ctx, identityFrom(c), conversation.ShowMenu{})
	return sendReply(c, reply)
}

func (a *App) handleStats(c tele.Context) error {
	ctx := helpers.WithHandler(c, "stats")
	report, err := a.statsReport(ctx)
	if err != nil {
		logger.Error(ctx, "bot", "stats.report",
			slog.String("err", err.Error()),
		)
		return helpers.SendHTML(c, statsFailedText)
	}
	return helpers.SendHTML(c, report)
}

func (a *App) handleText(c tele.Context) error {
	ctx := helpers.WithHandler(c, "text")
	reply := a.engine.Handle(ctx, identityFrom(c), conversation.Text{Raw: c.Text()})
	return sendReply(c, reply)
}

func (a *App) handleCallback(c tele.Context, key string) error {
	_, payload := middleware.ParseCallback(c.Callback())
	ctx := helpers.WithHandler(c, "cb:"+key)

	ev := DecodeCallback(key, payload)
	reply := a.engine.Handle(ctx, identityFrom(c), ev)

	// Stop the button spinner before rendering.
	if err := c.Respond(); err != nil {
		logger.Debug(ctx, "bot", "callback.respond",
			slog.String("cb_key", key),
			slog.String("err", err.Error()),
		)
	}
	return editReply(c, reply)
}

// handleUnknownCallback answers buttons from stale keyboards whose keys the
// bot no longer registers.
func (a *App) handleUnknownCallback(c tele.Context) error {
	ctx := helpers.WithHandler(c, "cb:unknown")
	reply := a.engine.Handle(ctx, identityFrom(c), conversation.Unknown{})
	if err := c.Respond(); err != nil {
		logger.Debug(ctx, "bot", "callback.respond",
			slog.String("err", err.Error()),
		)
	}
	return editReply(c, reply)
}
