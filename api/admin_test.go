package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mockdb "github.com/katatrina/vgvault-BE/internal/db/mock"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/stretchr/testify/require"
)

func TestAdminAPI(t *testing.T) {
	admin, _ := randomUser(t)
	admin.IsAdmin = true
	regular, _ := randomUser(t)
	seller, _ := randomUser(t)

	auction := randomAuction(seller)

	testCases := []struct {
		name          string
		method        string
		url           string
		user          db.User
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "ListAllAuctions",
			method: http.MethodGet,
			url:    "/v1/admin/auctions?limit=10&offset=20",
			user:   admin,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListAllAuctions(gomock.Any(), gomock.Eq(db.ListAllAuctionsParams{Limit: 10, Offset: 20})).
					Times(1).
					Return([]db.ListAllAuctionsRow{
						{Auction: auction, SellerUsername: seller.Username, SellerDisplayName: seller.DisplayName},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []adminAuctionResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Len(t, got, 1)
				require.Equal(t, auction.ID, got[0].ID)
				require.Equal(t, seller.Username, got[0].Seller.Username)
			},
		},
		{
			name:   "ListAllAuctionsForbidden",
			method: http.MethodGet,
			url:    "/v1/admin/auctions",
			user:   regular,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListAllAuctions(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
				requireErrorKind(t, recorder.Body, "forbidden")
			},
		},
		{
			name:   "DeleteAuction",
			method: http.MethodDelete,
			url:    fmt.Sprintf("/v1/admin/auctions/%s", auction.ID),
			user:   admin,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					DeleteAuctionTx(gomock.Any(), gomock.Eq(auction.ID)).
					Times(1).
					Return(db.DeleteAuctionTxResult{Auction: auction, DeletedBids: 3, DeletedNotifications: 2}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got deleteAuctionResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, auction.ID.String(), got.AuctionID)
				require.EqualValues(t, 3, got.DeletedBids)
				require.EqualValues(t, 2, got.DeletedNotifications)
			},
		},
		{
			name:   "DeleteAuctionNotFound",
			method: http.MethodDelete,
			url:    fmt.Sprintf("/v1/admin/auctions/%s", auction.ID),
			user:   admin,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					DeleteAuctionTx(gomock.Any(), gomock.Eq(auction.ID)).
					Times(1).
					Return(db.DeleteAuctionTxResult{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "DeleteAuctionForbidden",
			method: http.MethodDelete,
			url:    fmt.Sprintf("/v1/admin/auctions/%s", auction.ID),
			user:   seller,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().DeleteAuctionTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:   "TerminateAuction",
			method: http.MethodPost,
			url:    fmt.Sprintf("/v1/admin/auctions/%s/terminate", auction.ID),
			user:   admin,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					DeleteAuctionTx(gomock.Any(), gomock.Eq(auction.ID)).
					Times(1).
					Return(db.DeleteAuctionTxResult{Auction: auction}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(tc.method, tc.url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, tc.user, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
