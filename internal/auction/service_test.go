package auction

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	mockdb "github.com/katatrina/vgvault-BE/internal/db/mock"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store       *mockdb.MockStore
	notifier    *fakeNotifier
	broadcaster *recordingBroadcaster
	scheduler   *fakeScheduler
	files       *fakeFileStore
	service     *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		store:       mockdb.NewMockStore(ctrl),
		notifier:    &fakeNotifier{},
		broadcaster: &recordingBroadcaster{},
		scheduler:   newFakeScheduler(),
		files:       &fakeFileStore{},
	}
	env.service = NewService(env.store, env.notifier, env.broadcaster,
		WithFileStore(env.files),
		WithEndScheduler(env.scheduler, env.scheduler),
		WithClock(func() time.Time { return testNow }),
	)
	return env
}

func randomUser(name string) db.User {
	return db.User{
		ID:          uuid.New(),
		Username:    name,
		DisplayName: name + " display",
		Email:       name + "@example.com",
	}
}

func randomAuction(seller db.User) db.Auction {
	return db.Auction{
		ID:            uuid.New(),
		Slug:          "chrono-trigger-snes-abc12345",
		Title:         "Chrono Trigger SNES",
		StartingPrice: decimal.NewFromInt(100),
		CurrentBid:    decimal.NewFromInt(100),
		SellerID:      seller.ID,
		DurationDays:  7,
		EndDate:       testNow.Add(24 * time.Hour),
		IsActive:      true,
		CreatedAt:     testNow.Add(-6 * 24 * time.Hour),
	}
}

func withBid(auction db.Auction, bidder db.User, amount int64) db.Auction {
	auction.CurrentBid = decimal.NewFromInt(amount)
	auction.HighestBidderID = &bidder.ID
	return auction
}

type eqPlaceBidTxParamsMatcher struct {
	arg db.PlaceBidTxParams
}

// Matches compares amounts by value, so 121 and 121.00 are the same bid.
func (e eqPlaceBidTxParamsMatcher) Matches(x interface{}) bool {
	arg, ok := x.(db.PlaceBidTxParams)
	if !ok {
		return false
	}

	return arg.AuctionID == e.arg.AuctionID &&
		arg.BidderID == e.arg.BidderID &&
		arg.Amount.Equal(e.arg.Amount) &&
		arg.Now.Equal(e.arg.Now)
}

func (e eqPlaceBidTxParamsMatcher) String() string {
	return fmt.Sprintf("matches bid %s by %s on auction %s", e.arg.Amount, e.arg.BidderID, e.arg.AuctionID)
}

func EqPlaceBidTxParams(arg db.PlaceBidTxParams) gomock.Matcher {
	return eqPlaceBidTxParamsMatcher{arg}
}

func TestPlaceBid(t *testing.T) {
	seller := randomUser("seller")
	alice := randomUser("alice")
	bob := randomUser("bob")
	auction := randomAuction(seller)

	testCases := []struct {
		name          string
		bidder        db.User
		amount        decimal.Decimal
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error)
	}{
		{
			name:   "OutbidsPreviousBidder",
			bidder: bob,
			amount: decimal.NewFromInt(121),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), EqPlaceBidTxParams(db.PlaceBidTxParams{
						AuctionID: auction.ID,
						BidderID:  bob.ID,
						Amount:    decimal.NewFromInt(121),
						Now:       testNow,
					})).
					Times(1).
					Return(db.PlaceBidTxResult{
						Bid:            db.Bid{ID: uuid.New(), AuctionID: auction.ID, BidderID: bob.ID, Amount: decimal.NewFromInt(121)},
						Auction:        withBid(auction, bob, 121),
						Bidder:         bob,
						PreviousBidder: &alice,
					}, nil)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, []db.NotificationType{db.NotificationTypeOutbid}, env.notifier.types())
				require.Equal(t, alice.ID, env.notifier.sent[0].RecipientID)
				require.Equal(t, auction.ID, *env.notifier.sent[0].AuctionID)

				require.Equal(t, []string{event.EventTypeBidUpdate}, env.broadcaster.types())
				payload := env.broadcaster.events[0].Data.(event.BidUpdatePayload)
				require.True(t, payload.CurrentBid.Equal(decimal.NewFromInt(121)))
				require.True(t, payload.MinimumBid.Equal(decimal.NewFromInt(134)))
				require.Equal(t, bob.DisplayName, payload.HighestBidderDisplay)
				require.Equal(t, event.AuctionTopic(auction.ID), env.broadcaster.events[0].Topic)
			},
		},
		{
			name:   "FractionalAmount",
			bidder: bob,
			amount: decimal.RequireFromString("121.5"),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), EqPlaceBidTxParams(db.PlaceBidTxParams{
						AuctionID: auction.ID,
						BidderID:  bob.ID,
						Amount:    decimal.RequireFromString("121.50"),
						Now:       testNow,
					})).
					Times(1).
					Return(db.PlaceBidTxResult{Auction: withBid(auction, bob, 121), Bidder: bob}, nil)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:   "FirstBidNoOutbid",
			bidder: alice,
			amount: decimal.NewFromInt(110),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.PlaceBidTxResult{Auction: withBid(auction, alice, 110), Bidder: alice}, nil)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.NoError(t, err)
				require.Empty(t, env.notifier.sent)
				require.Equal(t, []string{event.EventTypeBidUpdate}, env.broadcaster.types())
			},
		},
		{
			name:   "RaiseOwnBidNoOutbid",
			bidder: alice,
			amount: decimal.NewFromInt(121),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.PlaceBidTxResult{Auction: withBid(auction, alice, 121), Bidder: alice, PreviousBidder: &alice}, nil)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.NoError(t, err)
				require.Empty(t, env.notifier.sent)
			},
		},
		{
			name:   "BidTooLow",
			bidder: alice,
			amount: decimal.NewFromInt(100),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.PlaceBidTxResult{}, &db.BidTooLowError{
						Amount:     decimal.NewFromInt(100),
						MinimumBid: decimal.NewFromInt(110),
					})
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Error(t, err)
				require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
				require.ErrorIs(t, err, db.ErrBidTooLow)
				require.Contains(t, err.Error(), "$110")
				require.Empty(t, env.notifier.sent)
				require.Empty(t, env.broadcaster.events)
			},
		},
		{
			name:   "SelfBid",
			bidder: seller,
			amount: decimal.NewFromInt(1000),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).Return(db.PlaceBidTxResult{}, db.ErrSelfBid)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
				require.ErrorIs(t, err, db.ErrSelfBid)
			},
		},
		{
			name:   "NotFound",
			bidder: alice,
			amount: decimal.NewFromInt(110),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).Return(db.PlaceBidTxResult{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
			},
		},
		{
			name:   "NonPositiveAmount",
			bidder: alice,
			amount: decimal.NewFromInt(-5),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
			},
		},
		{
			name:   "ExpiredEndsAuctionInline",
			bidder: bob,
			amount: decimal.NewFromInt(121),
			buildStubs: func(store *mockdb.MockStore) {
				ended := withBid(auction, alice, 110)
				ended.IsActive = false

				gomock.InOrder(
					store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).Return(db.PlaceBidTxResult{}, db.ErrAuctionExpired),
					store.EXPECT().
						EndAuctionTx(gomock.Any(), gomock.Eq(db.EndAuctionTxParams{AuctionID: auction.ID, Now: testNow})).
						Times(1).
						Return(db.EndAuctionTxResult{Auction: ended, Ended: true, Winner: &alice, Seller: seller}, nil),
				)
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
				require.ErrorIs(t, err, db.ErrAuctionInactive)
				require.Equal(t, []db.NotificationType{
					db.NotificationTypeAuctionWon,
					db.NotificationTypeAuctionEndedSeller,
				}, env.notifier.types())
				require.Equal(t, []string{event.EventTypeAuctionEnded}, env.broadcaster.types())
			},
		},
		{
			name:   "DuplicateAmount",
			bidder: bob,
			amount: decimal.NewFromInt(121),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					PlaceBidTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.PlaceBidTxResult{}, &pgconn.PgError{
						Code:           db.UniqueViolationCode,
						ConstraintName: db.UniqueBidAmountConstraint,
					})
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
			},
		},
		{
			name:   "InternalError",
			bidder: bob,
			amount: decimal.NewFromInt(121),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().PlaceBidTx(gomock.Any(), gomock.Any()).Times(1).Return(db.PlaceBidTxResult{}, errors.New("tx failed"))
			},
			checkResponse: func(t *testing.T, env *testEnv, result db.PlaceBidTxResult, err error) {
				require.Equal(t, apperror.KindInternal, apperror.KindOf(err))
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			tc.buildStubs(env.store)

			result, err := env.service.PlaceBid(context.Background(), PlaceBidParams{
				AuctionID: auction.ID,
				BidderID:  tc.bidder.ID,
				Amount:    tc.amount,
			})
			tc.checkResponse(t, env, result, err)
		})
	}
}

func TestBuyNow(t *testing.T) {
	seller := randomUser("seller")
	buyer := randomUser("buyer")
	auction := randomAuction(seller)
	hammer := decimal.NewFromInt(500)
	auction.HammerPrice = &hammer

	t.Run("OK", func(t *testing.T) {
		env := newTestEnv(t)

		sold := withBid(auction, buyer, 500)
		sold.IsActive = false
		sold.EndReason = db.NullAuctionEndReason{AuctionEndReason: db.AuctionEndReasonBuyNow, Valid: true}

		env.store.EXPECT().
			BuyNowTx(gomock.Any(), gomock.Eq(db.BuyNowTxParams{AuctionID: auction.ID, BuyerID: buyer.ID, Now: testNow})).
			Times(1).
			Return(db.BuyNowTxResult{Auction: sold, Buyer: buyer, Seller: seller}, nil)

		result, err := env.service.BuyNow(context.Background(), auction.ID, buyer.ID)
		require.NoError(t, err)
		require.False(t, result.Auction.IsActive)

		require.Equal(t, []db.NotificationType{
			db.NotificationTypeBuyNowPurchase,
			db.NotificationTypeAuctionWon,
		}, env.notifier.types())
		require.Equal(t, seller.ID, env.notifier.sent[0].RecipientID)
		require.Equal(t, buyer.ID, env.notifier.sent[1].RecipientID)

		require.Equal(t, []string{event.EventTypeAuctionEnded}, env.broadcaster.types())
		payload := env.broadcaster.events[0].Data.(event.AuctionEndedPayload)
		require.Equal(t, buyer.DisplayName, payload.Winner)
		require.True(t, payload.FinalPrice.Equal(hammer))
		require.Equal(t, []uuid.UUID{auction.ID}, env.scheduler.cancelled)
	})

	t.Run("Unavailable", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().BuyNowTx(gomock.Any(), gomock.Any()).Times(1).Return(db.BuyNowTxResult{}, db.ErrBuyNowUnavailable)

		_, err := env.service.BuyNow(context.Background(), auction.ID, buyer.ID)
		require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
		require.Empty(t, env.notifier.sent)
	})

	t.Run("Inactive", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().BuyNowTx(gomock.Any(), gomock.Any()).Times(1).Return(db.BuyNowTxResult{}, db.ErrAuctionInactive)
		env.store.EXPECT().EndAuctionTx(gomock.Any(), gomock.Any()).Times(0)

		_, err := env.service.BuyNow(context.Background(), auction.ID, buyer.ID)
		require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}

func TestEndEarly(t *testing.T) {
	seller := randomUser("seller")
	bidder := randomUser("bidder")
	auction := randomAuction(seller)
	auction.Images = []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	t.Run("NoBidsDeletes", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().
			EndEarlyTx(gomock.Any(), gomock.Eq(db.EndEarlyTxParams{AuctionID: auction.ID, RequesterID: seller.ID, Now: testNow})).
			Times(1).
			Return(db.EndEarlyTxResult{Auction: auction, Deleted: true}, nil)

		result, err := env.service.EndEarly(context.Background(), auction.ID, seller.ID)
		require.NoError(t, err)
		require.True(t, result.Deleted)

		require.Empty(t, env.notifier.sent)
		require.Equal(t, []string{event.EventTypeAuctionDeleted}, env.broadcaster.types())
		require.Equal(t, auction.Images, env.files.deleted)
		require.Equal(t, []uuid.UUID{auction.ID}, env.scheduler.cancelled)
		require.Equal(t, []uuid.UUID{auction.ID}, env.notifier.forgotten)
	})

	t.Run("WithBidsEnds", func(t *testing.T) {
		env := newTestEnv(t)
		ended := withBid(auction, bidder, 150)
		ended.IsActive = false

		env.store.EXPECT().
			EndEarlyTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.EndEarlyTxResult{Auction: ended, Winner: &bidder, Seller: seller}, nil)

		_, err := env.service.EndEarly(context.Background(), auction.ID, seller.ID)
		require.NoError(t, err)

		require.Equal(t, []db.NotificationType{
			db.NotificationTypeAuctionWon,
			db.NotificationTypeAuctionEndedSeller,
		}, env.notifier.types())
		require.Equal(t, []string{event.EventTypeAuctionEndedEarly}, env.broadcaster.types())

		payload := env.broadcaster.events[0].Data.(event.AuctionEndedPayload)
		require.Equal(t, bidder.DisplayName, payload.Winner)
		require.Equal(t, messageEndedEarly, payload.Message)
		require.Empty(t, env.files.deleted)
		require.Empty(t, env.notifier.forgotten)
	})

	t.Run("NotSeller", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().EndEarlyTx(gomock.Any(), gomock.Any()).Times(1).Return(db.EndEarlyTxResult{}, db.ErrNotSeller)

		_, err := env.service.EndEarly(context.Background(), auction.ID, bidder.ID)
		require.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
		require.Empty(t, env.broadcaster.events)
	})

	t.Run("AlreadyEnded", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().EndEarlyTx(gomock.Any(), gomock.Any()).Times(1).Return(db.EndEarlyTxResult{}, db.ErrAuctionInactive)

		_, err := env.service.EndEarly(context.Background(), auction.ID, seller.ID)
		require.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}

func TestExpireAuction(t *testing.T) {
	seller := randomUser("seller")
	bidder := randomUser("bidder")
	auction := randomAuction(seller)

	t.Run("NoBidsKeepsAuction", func(t *testing.T) {
		env := newTestEnv(t)
		ended := auction
		ended.IsActive = false

		env.store.EXPECT().
			EndAuctionTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.EndAuctionTxResult{Auction: ended, Ended: true, Seller: seller}, nil)
		env.store.EXPECT().DeleteAuctionTx(gomock.Any(), gomock.Any()).Times(0)

		result, err := env.service.ExpireAuction(context.Background(), auction.ID)
		require.NoError(t, err)
		require.True(t, result.Ended)

		require.Equal(t, []db.NotificationType{db.NotificationTypeAuctionEndedSeller}, env.notifier.types())
		require.Contains(t, env.notifier.sent[0].Message, "no bids")

		require.Equal(t, []string{event.EventTypeAuctionEnded}, env.broadcaster.types())
		payload := env.broadcaster.events[0].Data.(event.AuctionEndedPayload)
		require.Equal(t, noWinner, payload.Winner)
		require.True(t, payload.FinalPrice.Equal(auction.CurrentBid))
	})

	t.Run("WithWinner", func(t *testing.T) {
		env := newTestEnv(t)
		ended := withBid(auction, bidder, 200)
		ended.IsActive = false

		env.store.EXPECT().
			EndAuctionTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.EndAuctionTxResult{Auction: ended, Ended: true, Winner: &bidder, Seller: seller}, nil)

		_, err := env.service.ExpireAuction(context.Background(), auction.ID)
		require.NoError(t, err)
		require.Equal(t, []db.NotificationType{
			db.NotificationTypeAuctionWon,
			db.NotificationTypeAuctionEndedSeller,
		}, env.notifier.types())
	})

	t.Run("AlreadyEndedIsNoop", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().
			EndAuctionTx(gomock.Any(), gomock.Any()).
			Times(2).
			Return(db.EndAuctionTxResult{Auction: auction, Ended: false}, nil)

		for i := 0; i < 2; i++ {
			result, err := env.service.ExpireAuction(context.Background(), auction.ID)
			require.NoError(t, err)
			require.False(t, result.Ended)
		}
		require.Empty(t, env.notifier.sent)
		require.Empty(t, env.broadcaster.events)
	})

	t.Run("NotDue", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().EndAuctionTx(gomock.Any(), gomock.Any()).Times(1).Return(db.EndAuctionTxResult{}, db.ErrAuctionNotDue)

		_, err := env.service.ExpireAuction(context.Background(), auction.ID)
		require.ErrorIs(t, err, db.ErrAuctionNotDue)
	})
}

func TestSweepExpire(t *testing.T) {
	env := newTestEnv(t)
	seller := randomUser("seller")

	endedID := uuid.New()
	alreadyEndedID := uuid.New()
	failingID := uuid.New()
	deletedID := uuid.New()

	env.store.EXPECT().
		ListExpiredActiveAuctionIDs(gomock.Any(), gomock.Eq(testNow)).
		Times(1).
		Return([]uuid.UUID{failingID, endedID, alreadyEndedID, deletedID}, nil)

	ended := randomAuction(seller)
	ended.ID = endedID
	ended.IsActive = false

	env.store.EXPECT().
		EndAuctionTx(gomock.Any(), gomock.Eq(db.EndAuctionTxParams{AuctionID: failingID, Now: testNow})).
		Return(db.EndAuctionTxResult{}, errors.New("deadlock detected"))
	env.store.EXPECT().
		EndAuctionTx(gomock.Any(), gomock.Eq(db.EndAuctionTxParams{AuctionID: endedID, Now: testNow})).
		Return(db.EndAuctionTxResult{Auction: ended, Ended: true, Seller: seller}, nil)
	env.store.EXPECT().
		EndAuctionTx(gomock.Any(), gomock.Eq(db.EndAuctionTxParams{AuctionID: alreadyEndedID, Now: testNow})).
		Return(db.EndAuctionTxResult{Ended: false}, nil)
	env.store.EXPECT().
		EndAuctionTx(gomock.Any(), gomock.Eq(db.EndAuctionTxParams{AuctionID: deletedID, Now: testNow})).
		Return(db.EndAuctionTxResult{}, db.ErrRecordNotFound)

	count, err := env.service.SweepExpire(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, env.broadcaster.events, 1)
	require.Equal(t, event.AuctionTopic(endedID), env.broadcaster.events[0].Topic)
}

func TestAdminDelete(t *testing.T) {
	seller := randomUser("seller")
	auction := randomAuction(seller)
	auction.Images = []string{"https://cdn.example.com/a.jpg"}

	t.Run("OK", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().
			DeleteAuctionTx(gomock.Any(), gomock.Eq(auction.ID)).
			Times(1).
			Return(db.DeleteAuctionTxResult{Auction: auction, DeletedBids: 3, DeletedNotifications: 2}, nil)

		result, err := env.service.AdminDelete(context.Background(), auction.ID)
		require.NoError(t, err)
		require.EqualValues(t, 3, result.DeletedBids)

		require.Equal(t, []string{event.EventTypeAuctionCompletelyDeleted}, env.broadcaster.types())
		payload := env.broadcaster.events[0].Data.(event.AuctionDeletedPayload)
		require.Equal(t, "Auction completely removed - deleted by admin", payload.Message)
		require.Equal(t, auction.Images, env.files.deleted)
		require.Equal(t, []uuid.UUID{auction.ID}, env.scheduler.cancelled)
		require.Equal(t, []uuid.UUID{auction.ID}, env.notifier.forgotten)
	})

	t.Run("Terminate", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().DeleteAuctionTx(gomock.Any(), gomock.Eq(auction.ID)).Times(1).Return(db.DeleteAuctionTxResult{Auction: auction}, nil)

		_, err := env.service.AdminTerminate(context.Background(), auction.ID)
		require.NoError(t, err)
		payload := env.broadcaster.events[0].Data.(event.AuctionDeletedPayload)
		require.Equal(t, "Auction completely removed - terminated by admin", payload.Message)
	})

	t.Run("NotFound", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().DeleteAuctionTx(gomock.Any(), gomock.Any()).Times(1).Return(db.DeleteAuctionTxResult{}, db.ErrRecordNotFound)

		_, err := env.service.AdminDelete(context.Background(), auction.ID)
		require.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		require.Empty(t, env.broadcaster.events)
		require.Empty(t, env.notifier.forgotten)
	})
}

func TestCreateAuction(t *testing.T) {
	seller := randomUser("seller")
	hammer := decimal.NewFromInt(500)

	t.Run("OK", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.EXPECT().
			CreateAuction(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.CreateAuctionParams) (db.Auction, error) {
				require.Equal(t, "Metroid Prime", arg.Title)
				require.Equal(t, "<p>Mint</p>", arg.Description)
				require.Equal(t, testNow.Add(3*24*time.Hour), arg.EndDate)
				require.EqualValues(t, 3, arg.DurationDays)
				require.Len(t, arg.Images, 1)
				require.Contains(t, arg.Slug, "metroid-prime-")
				return db.Auction{
					ID:            arg.ID,
					Slug:          arg.Slug,
					Title:         arg.Title,
					Images:        arg.Images,
					StartingPrice: arg.StartingPrice,
					CurrentBid:    arg.StartingPrice,
					HammerPrice:   arg.HammerPrice,
					SellerID:      arg.SellerID,
					EndDate:       arg.EndDate,
					IsActive:      true,
				}, nil
			})

		auction, err := env.service.CreateAuction(context.Background(), CreateAuctionParams{
			SellerID:      seller.ID,
			Title:         "<b>Metroid Prime</b>",
			Description:   "<p>Mint</p><script>alert(1)</script>",
			StartingPrice: decimal.NewFromInt(100),
			HammerPrice:   &hammer,
			DurationDays:  3,
			Images:        []Image{{Filename: "front.jpg", Data: []byte("jpeg")}},
		})
		require.NoError(t, err)
		require.True(t, auction.CurrentBid.Equal(auction.StartingPrice))
		require.Equal(t, auction.EndDate, env.scheduler.scheduled[auction.ID])
	})

	t.Run("UploadFailureIsSkipped", func(t *testing.T) {
		env := newTestEnv(t)
		env.files.uploadErr = errors.New("cloudinary down")

		env.store.EXPECT().
			CreateAuction(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.CreateAuctionParams) (db.Auction, error) {
				require.Empty(t, arg.Images)
				return db.Auction{ID: arg.ID, EndDate: arg.EndDate}, nil
			})

		_, err := env.service.CreateAuction(context.Background(), CreateAuctionParams{
			SellerID:      seller.ID,
			Title:         "Metroid Prime",
			StartingPrice: decimal.NewFromInt(100),
			DurationDays:  3,
			Images:        []Image{{Filename: "front.jpg", Data: []byte("jpeg")}},
		})
		require.NoError(t, err)
	})

	invalid := []struct {
		name string
		arg  CreateAuctionParams
	}{
		{"ShortTitle", CreateAuctionParams{Title: "ab", StartingPrice: decimal.NewFromInt(1), DurationDays: 1}},
		{"NegativePrice", CreateAuctionParams{Title: "Metroid", StartingPrice: decimal.NewFromInt(-1), DurationDays: 1}},
		{"HammerNotAboveStart", CreateAuctionParams{Title: "Metroid", StartingPrice: decimal.NewFromInt(600), HammerPrice: &hammer, DurationDays: 1}},
		{"ZeroDuration", CreateAuctionParams{Title: "Metroid", StartingPrice: decimal.NewFromInt(1), DurationDays: 0}},
		{"TooManyImages", CreateAuctionParams{Title: "Metroid", StartingPrice: decimal.NewFromInt(1), DurationDays: 1, Images: make([]Image, 6)}},
		{"OnlyMarkup", CreateAuctionParams{Title: "<b></b>", StartingPrice: decimal.NewFromInt(1), DurationDays: 1}},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.store.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Times(0)

			tc.arg.SellerID = seller.ID
			_, err := env.service.CreateAuction(context.Background(), tc.arg)
			require.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
		})
	}
}

func TestGetAuctionDetails(t *testing.T) {
	env := newTestEnv(t)
	seller := randomUser("seller")
	bidder := randomUser("bidder")
	auction := withBid(randomAuction(seller), bidder, 110)
	bidderName := bidder.Username
	bidderDisplay := bidder.DisplayName

	env.store.EXPECT().
		GetAuctionDetails(gomock.Any(), gomock.Eq(auction.ID)).
		Times(1).
		Return(db.GetAuctionDetailsRow{
			Auction:                  auction,
			SellerUsername:           seller.Username,
			SellerDisplayName:        seller.DisplayName,
			HighestBidderUsername:    &bidderName,
			HighestBidderDisplayName: &bidderDisplay,
		}, nil)
	env.store.EXPECT().
		ListAuctionBids(gomock.Any(), gomock.Eq(auction.ID)).
		Times(1).
		Return([]db.ListAuctionBidsRow{{
			ID:                uuid.New(),
			AuctionID:         auction.ID,
			BidderID:          bidder.ID,
			Amount:            decimal.NewFromInt(110),
			BidderUsername:    bidder.Username,
			BidderDisplayName: bidder.DisplayName,
		}}, nil)

	details, err := env.service.GetAuctionDetails(context.Background(), auction.ID)
	require.NoError(t, err)
	require.Equal(t, seller.DisplayName, details.Seller.DisplayName)
	require.NotNil(t, details.HighestBidder)
	require.Equal(t, bidder.ID, details.HighestBidder.ID)
	require.Len(t, details.Bids, 1)
	require.True(t, details.MinimumBid.Equal(decimal.NewFromInt(121)))
}

func TestGetAuctionDetailsNotFound(t *testing.T) {
	env := newTestEnv(t)
	auctionID := uuid.New()

	env.store.EXPECT().GetAuctionDetails(gomock.Any(), gomock.Eq(auctionID)).Return(db.GetAuctionDetailsRow{}, db.ErrRecordNotFound)
	env.store.EXPECT().ListAuctionBids(gomock.Any(), gomock.Eq(auctionID)).AnyTimes().Return([]db.ListAuctionBidsRow{}, nil)

	_, err := env.service.GetAuctionDetails(context.Background(), auctionID)
	require.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
