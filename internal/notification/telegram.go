package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkravets/PromoDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes approval-queue events to the vendor chat.
// With no token or chat configured it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPendingGenerated(ctx context.Context, p *domain.PendingAIPromotion) {
	text := fmt.Sprintf(
		"*New promotion awaiting approval*\n\n"+
			"Listing: %s (%s)\n"+
			"Occupancy gap: %d%% unsold, urgency %s\n"+
			"Draft: %s at %d%% off\n"+
			"Expires: %s (UTC)",
		p.ListingTitle, p.ListingType,
		p.OccupancyGap, p.Urgency,
		p.Promotion.Name, p.Promotion.DiscountValue,
		p.ExpiresAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPromotionApproved(ctx context.Context, promo *domain.Promotion) {
	text := fmt.Sprintf(
		"*Promotion approved*\n\n"+
			"%s, %d%% off\n"+
			"Runs %s to %s (UTC)",
		promo.Name, promo.DiscountValue,
		promo.StartDate.Format("02.01.2006"), promo.EndDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPendingExpired(ctx context.Context, p *domain.PendingAIPromotion) {
	text := fmt.Sprintf(
		"*Pending promotion expired without review*\n\n"+
			"Listing: %s\n"+
			"Draft discarded: %s",
		p.ListingTitle, p.Promotion.Name,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
