package auction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/katatrina/vgvault-BE/internal/storage"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/katatrina/vgvault-BE/internal/validator"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Image struct {
	Filename string
	Data     []byte
}

type CreateAuctionParams struct {
	SellerID      uuid.UUID
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	HammerPrice   *decimal.Decimal
	DurationDays  int
	Images        []Image
}

func (s *Service) validateCreateAuction(arg CreateAuctionParams) error {
	if err := validator.ValidateAuctionTitle(arg.Title); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	if err := validator.ValidateAuctionDescription(arg.Description); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	if err := validator.ValidateAuctionStartingPrice(arg.StartingPrice); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	if err := validator.ValidateAuctionHammerPrice(arg.StartingPrice, arg.HammerPrice); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	if err := validator.ValidateAuctionDuration(arg.DurationDays); err != nil {
		return apperror.InvalidInput("%s", err.Error())
	}
	if len(arg.Images) > validator.MaxAuctionImages {
		return apperror.InvalidInput("at most %d images are allowed", validator.MaxAuctionImages)
	}
	return nil
}

// CreateAuction lists a new auction. Images that fail to upload are skipped.
func (s *Service) CreateAuction(ctx context.Context, arg CreateAuctionParams) (db.Auction, error) {
	if err := s.validateCreateAuction(arg); err != nil {
		return db.Auction{}, err
	}

	title := strings.TrimSpace(s.titlePolicy.Sanitize(arg.Title))
	if title == "" {
		return db.Auction{}, apperror.InvalidInput("title must contain text")
	}

	auctionID, err := uuid.NewV7()
	if err != nil {
		return db.Auction{}, fmt.Errorf("failed to generate auction ID: %w", err)
	}

	var hammerPrice *decimal.Decimal
	if arg.HammerPrice != nil {
		h := money.Normalize(*arg.HammerPrice)
		hammerPrice = &h
	}

	now := s.now()
	auction, err := s.store.CreateAuction(ctx, db.CreateAuctionParams{
		ID:            auctionID,
		Slug:          util.GenerateRandomSlug(title),
		Title:         title,
		Description:   strings.TrimSpace(s.descriptionPolicy.Sanitize(arg.Description)),
		Images:        s.uploadImages(ctx, auctionID, arg.Images),
		StartingPrice: money.Normalize(arg.StartingPrice),
		HammerPrice:   hammerPrice,
		SellerID:      arg.SellerID,
		DurationDays:  int32(arg.DurationDays),
		EndDate:       now.Add(time.Duration(arg.DurationDays) * 24 * time.Hour),
	})
	if err != nil {
		return db.Auction{}, fmt.Errorf("failed to create auction: %w", err)
	}

	if s.scheduler != nil {
		if err = s.scheduler.ScheduleAuctionEnd(ctx, auction.ID, auction.EndDate); err != nil {
			// The sweeper still ends it.
			log.Warn().Err(err).Str("auction_id", auction.ID.String()).Msg("failed to schedule auction end")
		}
	}

	log.Info().
		Str("auction_id", auction.ID.String()).
		Str("user_id", arg.SellerID.String()).
		Time("end_date", auction.EndDate).
		Msg("auction created")

	return auction, nil
}

func (s *Service) uploadImages(ctx context.Context, auctionID uuid.UUID, images []Image) []string {
	urls := make([]string, 0, len(images))
	folder := storage.AuctionFolder(auctionID)

	for _, image := range images {
		url, err := s.files.UploadFile(ctx, image.Data, image.Filename, folder)
		if err != nil {
			log.Warn().Err(err).
				Str("auction_id", auctionID.String()).
				Str("filename", image.Filename).
				Msg("failed to upload auction image, skipping")
			continue
		}
		urls = append(urls, url)
	}

	return urls
}
