package validator

import (
	"fmt"
	"strings"

	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/shopspring/decimal"
)

const (
	MaxAuctionImages  = 5
	MinDurationDays   = 1
	MaxDurationDays   = 30
	maxTitleLength    = 100
	minTitleLength    = 3
	maxDescriptionLen = 5000
)

// maxAmount is the largest value a NUMERIC(12,2) column holds.
var maxAmount = decimal.RequireFromString("9999999999.99")

func ValidateAuctionTitle(value string) error {
	if err := ValidateString(strings.TrimSpace(value), minTitleLength, maxTitleLength); err != nil {
		return fmt.Errorf("title %w", err)
	}
	return nil
}

func ValidateAuctionDescription(value string) error {
	if err := ValidateString(value, 0, maxDescriptionLen); err != nil {
		return fmt.Errorf("description %w", err)
	}
	return nil
}

// ValidateAmount checks that an amount fits the money column exactly.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%s must not be negative, provided: %s", field, money.Format(amount))
	}

	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%s must have at most 2 decimal places, provided: %s", field, amount.String())
	}

	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%s must be at most %s, provided: %s", field, money.Format(maxAmount), money.Format(amount))
	}

	return nil
}

func ValidateAuctionStartingPrice(price decimal.Decimal) error {
	return ValidateAmount("starting_price", price)
}

// ValidateAuctionHammerPrice validates the buy now price if provided.
func ValidateAuctionHammerPrice(startingPrice decimal.Decimal, hammerPrice *decimal.Decimal) error {
	if hammerPrice == nil {
		return nil
	}

	if err := ValidateAmount("hammer_price", *hammerPrice); err != nil {
		return err
	}

	if !hammerPrice.GreaterThan(startingPrice) {
		return fmt.Errorf("hammer_price must be greater than starting_price, provided: %s, starting_price: %s",
			money.Format(*hammerPrice), money.Format(startingPrice))
	}

	return nil
}

func ValidateAuctionDuration(days int) error {
	if days < MinDurationDays || days > MaxDurationDays {
		return fmt.Errorf("duration_days must be between %d and %d, provided: %d", MinDurationDays, MaxDurationDays, days)
	}
	return nil
}

func ValidateBidAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero, provided: %s", amount.String())
	}

	return ValidateAmount("amount", amount)
}
