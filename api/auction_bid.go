package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/auction"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/shopspring/decimal"
)

type placeBidRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"121"`
}

//	@Summary		Place a bid
//	@Description	The bid must be at least the current minimum bid. Sellers cannot bid on their own auctions.
//	@Tags			bids
//	@Accept			json
//	@Produce		json
//	@Param			auctionID	path		string			true	"Auction ID"
//	@Param			request		body		placeBidRequest	true	"Bid amount"
//	@Success		201			{object}	bidResponse
//	@Failure		400			{object}	errorBody
//	@Failure		404			{object}	errorBody
//	@Failure		409			{object}	errorBody	"Auction inactive, bid too low or self bid"
//	@Failure		429			{object}	errorBody
//	@Security		accessToken
//	@Router			/auctions/{auctionID}/bids [post]
func (server *Server) placeBid(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := server.auctions.PlaceBid(c, auction.PlaceBidParams{
		AuctionID: auctionID,
		BidderID:  authPayload.UserID,
		Amount:    req.Amount,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBidResponse(result))
}

//	@Summary		Buy now
//	@Description	Ends the auction at its hammer price in favour of the caller.
//	@Tags			bids
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	auctionResponse
//	@Failure		404			{object}	errorBody
//	@Failure		409			{object}	errorBody	"Auction inactive, buy now unavailable or self purchase"
//	@Security		accessToken
//	@Router			/auctions/{auctionID}/buy-now [post]
func (server *Server) buyNow(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	result, err := server.auctions.BuyNow(c, auctionID, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuctionResponse(result.Auction))
}

type endAuctionEarlyResponse struct {
	Deleted bool             `json:"deleted"`
	Auction *auctionResponse `json:"auction,omitempty"`
}

//	@Summary		End an auction early
//	@Description	Sellers may close their active auction. An auction without bids is deleted instead.
//	@Tags			auctions
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	endAuctionEarlyResponse
//	@Failure		403			{object}	errorBody
//	@Failure		404			{object}	errorBody
//	@Failure		409			{object}	errorBody
//	@Security		accessToken
//	@Router			/auctions/{auctionID}/end-early [post]
func (server *Server) endAuctionEarly(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	result, err := server.auctions.EndEarly(c, auctionID, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if result.Deleted {
		c.JSON(http.StatusOK, endAuctionEarlyResponse{Deleted: true})
		return
	}

	resp := newAuctionResponse(result.Auction)
	c.JSON(http.StatusOK, endAuctionEarlyResponse{Auction: &resp})
}
