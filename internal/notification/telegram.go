package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Boodsmen/booking-bot/internal/domain"
)

const sendTimeout = 5 * time.Second

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) BookingCreated(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Место забронировано!*\n\nОборудование: %s\nНачало: %s\nОкончание: %s\n\nПодтвердите начало использования после старта брони.",
		eq.Name, formatTime(b.StartTime), formatTime(b.EndTime),
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) BookingExpired(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\nОборудование: %s\nПричина: начало использования не подтверждено вовремя.\n\nБронь автоматически отменена.",
		eq.Name,
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) ConfirmReminder(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, untilStart time.Duration) error {
	when := "сейчас"
	if untilStart > 0 {
		when = fmt.Sprintf("через %d мин", int(untilStart.Minutes()))
	}
	text := fmt.Sprintf(
		"*Напоминание о брони*\n\nОборудование: %s\nВремя начала: %s\n\nПожалуйста, подтвердите начало использования.",
		eq.Name, when,
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) ReturnReminder(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, untilEnd time.Duration) error {
	text := fmt.Sprintf(
		"*Напоминание о возврате*\n\nОборудование: %s\nОсталось времени: %d мин\n\nПожалуйста, верните оборудование вовремя.",
		eq.Name, int(untilEnd.Minutes()),
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) OverdueNotice(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking, overdue time.Duration) error {
	text := fmt.Sprintf(
		"*Просрочен возврат оборудования!*\n\nОборудование: %s\nПросрочено: %d мин\n\nПожалуйста, верните оборудование как можно скорее.",
		eq.Name, int(overdue.Minutes()),
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) OverdueEscalation(ctx context.Context, operator, requester *domain.User, eq *domain.Equipment, b *domain.Booking, overdue time.Duration) error {
	username := requester.Username
	if username == "" {
		username = "без username"
	}
	text := fmt.Sprintf(
		"*КРИТИЧЕСКАЯ ПРОСРОЧКА*\n\nСотрудник: %s (@%s)\nОборудование: %s\nПросрочено: %d мин\n\nТребуется вмешательство администратора.",
		requester.FullName, username, eq.Name, int(overdue.Minutes()),
	)
	return n.send(ctx, operator.TelegramChatID, text)
}

func (n *TelegramNotifier) AutoCompleted(ctx context.Context, user *domain.User, eq *domain.Equipment, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Бронь автоматически завершена*\n\nОборудование: %s\nПричина: срок брони истёк более суток назад.\n\nЕсли оборудование не возвращено, обратитесь к администратору.",
		eq.Name,
	)
	return n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notification cancelled: %w", err)
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	done := make(chan error, 1)
	go func() {
		_, err := n.bot.Send(msg)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("send telegram notification: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send telegram notification: %w", err)
		}
	}

	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format("02.01.2006 15:04")
}
