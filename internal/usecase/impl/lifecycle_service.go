package impl

import (
	"context"
	"log/slog"

	"spotlight/config"
	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/repository"
	"spotlight/internal/domain/service"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"
)

// lifecycleService implements the LifecycleUsecase interface.
type lifecycleService struct {
	txManager    repository.TransactionManager
	clock        service.Clock
	publisher    service.EventPublisher
	shardCount   int
	defaultTitle string
	logger       *slog.Logger
}

// NewLifecycleService is the constructor for lifecycleService.
func NewLifecycleService(
	txManager repository.TransactionManager,
	clock service.Clock,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LifecycleUsecase {
	return &lifecycleService{
		txManager:    txManager,
		clock:        clock,
		publisher:    publisher,
		shardCount:   cfg.Rotation.ShardCount,
		defaultTitle: cfg.Rotation.DefaultTitle,
		logger:       logger,
	}
}

// RolloverDay provisions today's profile and shards and repoints the live
// profile. Delivery is at-least-once, so every step tolerates having already
// run: a duplicate profile is a logged skip, shard provisioning never resets
// live counters, and repointing to the same day is harmless.
func (srv *lifecycleService) RolloverDay(ctx context.Context) error {
	today := srv.clock.Today()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		shardRepo := repoFactory.NewShardRepository()
		stateRepo := repoFactory.NewStateRepository()

		profile := &entity.Profile{
			Day: today,
			Content: entity.ProfileContent{
				Title: srv.defaultTitle,
			},
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			if !errors.Is(err, repository.ErrDuplicateProfile) {
				return errors.Wrap(err, "failed to create profile")
			}

			srv.logger.Info("Rollover re-delivered, profile already exists",
				slog.String("day", today.String()),
			)
		}

		if err := shardRepo.Provision(ctx, today, srv.shardCount); err != nil {
			return errors.Wrap(err, "failed to provision metric shards")
		}

		if err := stateRepo.SetProfileDay(ctx, today); err != nil {
			return errors.Wrap(err, "failed to repoint current profile")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Day rolled over", slog.String("day", today.String()))
	srv.publish(ctx, &service.LifecycleEvent{
		Type: service.EventDayRolledOver,
		Day:  today.String(),
	})

	return nil
}

// OpenAuction creates today's auction bidding for tomorrow's profile and
// repoints the live auction. Re-delivery is a logged skip.
func (srv *lifecycleService) OpenAuction(ctx context.Context) error {
	today := srv.clock.Today()

	target, err := today.Next()
	if err != nil {
		return errors.Wrap(err, "failed to derive auction target day")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auctionRepo := repoFactory.NewAuctionRepository()
		stateRepo := repoFactory.NewStateRepository()

		auction := &entity.Auction{
			Day:        today,
			Target:     target,
			Status:     entity.AuctionStatusOpen,
			Resolution: entity.AuctionUnresolved,
		}
		if err := auctionRepo.CreateAuction(ctx, auction); err != nil {
			if !errors.Is(err, repository.ErrDuplicateAuction) {
				return errors.Wrap(err, "failed to create auction")
			}

			srv.logger.Info("Open re-delivered, auction already exists",
				slog.String("day", today.String()),
			)
		}

		if err := stateRepo.SetAuctionDay(ctx, today); err != nil {
			return errors.Wrap(err, "failed to repoint current auction")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Auction opened",
		slog.String("day", today.String()),
		slog.String("target", target.String()),
	)
	srv.publish(ctx, &service.LifecycleEvent{
		Type:      service.EventAuctionOpened,
		Day:       today.String(),
		TargetDay: target.String(),
	})

	return nil
}

// CloseAuction closes the live auction and resolves its winner. The status
// flip happens before any bid state is read: once the guarded close commits,
// no further bid can be accepted, so the bid count it returns is final.
// Because every accepted bid strictly exceeded the top at its acceptance,
// the last bid-log entry is the unique highest bid and names the winner.
// Zero bids close the auction unresolved and nobody gains the edit
// permission.
func (srv *lifecycleService) CloseAuction(ctx context.Context) error {
	var event *service.LifecycleEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.NewStateRepository()
		auctionRepo := repoFactory.NewAuctionRepository()
		userRepo := repoFactory.NewUserRepository()

		state, err := stateRepo.Current(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotSeeded) {
				srv.logger.Warn("Close triggered before any auction was opened")

				return nil
			}

			return errors.Wrap(err, "failed to resolve current auction day")
		}
		if state.AuctionDay == "" {
			srv.logger.Warn("Close triggered before any auction was opened")

			return nil
		}

		auction, err := auctionRepo.CloseAuction(ctx, state.AuctionDay)
		if err != nil {
			if errors.Is(err, repository.ErrAuctionAlreadyClosed) {
				srv.logger.Info("Close re-delivered, auction already closed",
					slog.String("day", state.AuctionDay.String()),
				)

				return nil
			}

			return errors.Wrap(err, "failed to close auction")
		}

		if auction.BidCount == 0 {
			event = &service.LifecycleEvent{
				Type: service.EventAuctionResolved,
				Day:  auction.Day.String(),
			}

			return nil
		}

		winning, err := auctionRepo.BidAt(ctx, auction.Day, auction.BidCount-1)
		if err != nil {
			return errors.Wrap(err, "failed to read winning bid")
		}

		if err := userRepo.MarkWinner(ctx, winning.BidderID, auction.Day); err != nil {
			return errors.Wrap(err, "failed to mark auction winner")
		}

		if err := auctionRepo.Resolve(ctx, auction.Day, entity.AuctionResolved); err != nil {
			return errors.Wrap(err, "failed to record auction resolution")
		}

		event = &service.LifecycleEvent{
			Type:      service.EventAuctionResolved,
			Day:       auction.Day.String(),
			TargetDay: auction.Target.String(),
			WinnerID:  winning.BidderID,
			TopBid:    winning.Amount,
			BidCount:  auction.BidCount,
		}

		return nil
	})
	if err != nil {
		return err
	}

	if event != nil {
		if event.WinnerID != "" {
			srv.logger.Info("Auction resolved",
				slog.String("day", event.Day),
				slog.String("winnerID", event.WinnerID),
				slog.Int64("topBid", event.TopBid),
				slog.Int("bidCount", event.BidCount),
			)
		} else {
			srv.logger.Info("Auction closed with no bids", slog.String("day", event.Day))
		}

		srv.publish(ctx, event)
	}

	return nil
}

// publish is best-effort: the transition already committed, so a publish
// failure is logged and swallowed rather than failing the trigger.
func (srv *lifecycleService) publish(ctx context.Context, event *service.LifecycleEvent) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish lifecycle event",
			slog.String("type", event.Type),
			slog.String("day", event.Day),
			slog.Any("error", err),
		)
	}
}
