package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/constants"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	userRepo      repository.UserRepository
	promotionRepo repository.PromotionRepository
	emailSender   service.EmailSender
	notifier      service.NotificationService
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	PromotionRepo repository.PromotionRepository
	EmailSender   service.EmailSender
	Notifier      service.NotificationService
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		userRepo:      params.UserRepo,
		promotionRepo: params.PromotionRepo,
		emailSender:   params.EmailSender,
		notifier:      params.Notifier,
		logger:        params.Logger,
	}
}

func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendPromotion emails every subscriber individually. A failed recipient is
// counted and skipped; the campaign is recorded either way.
func (srv *promotionService) SendPromotion(ctx context.Context, adminID uuid.UUID, input *usecase.PromotionInput) (*usecase.PromotionOutput, error) {
	subject := strings.TrimSpace(input.Subject)
	texts := make([]string, 0, len(input.Texts))
	for _, text := range input.Texts {
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	if subject == "" || len(texts) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject and at least one text are required")
	}

	subscribers, err := srv.userRepo.FindNotificationSubscribers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	out := &usecase.PromotionOutput{}
	for _, user := range subscribers {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "promotion interrupted")
		}

		err := srv.emailSender.Send(ctx, &service.Email{
			To:       user.Email,
			Subject:  subject,
			Template: service.EmailPromotion,
			Data:     map[string]any{"Name": user.FirstName(), "Texts": texts},
		})
		if err != nil {
			out.Failed++
			srv.log(ctx).Warn("Promotional email failed", slog.Any("userID", user.ID), slog.Any("error", err))

			continue
		}
		out.Sent++
	}

	record := &entity.PromotionalEmail{
		AdminID:    adminID,
		Subject:    subject,
		Texts:      texts,
		Recipients: out.Sent,
		Failed:     out.Failed,
	}
	if err := srv.promotionRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record promotion")
	}

	if err := srv.notifier.SendTopicNotification(ctx, constants.TopicPromotions, subject, texts[0], map[string]string{
		"promotion_id": record.ID.String(),
	}); err != nil {
		srv.log(ctx).Warn("Promotion push failed", slog.Any("error", err))
	}

	srv.log(ctx).Info("Promotion sent",
		slog.Any("adminID", adminID),
		slog.Int("sent", out.Sent),
		slog.Int("failed", out.Failed),
	)

	return out, nil
}
