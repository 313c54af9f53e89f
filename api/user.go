package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/token"
)

//	@Summary		List my bids
//	@Description	The caller's latest 50 bids. Bids on deleted auctions are not listed.
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}	userBidResponse
//	@Security		accessToken
//	@Router			/users/me/bids [get]
func (server *Server) listMyBids(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	bids, err := server.auctions.ListUserBids(c, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserBidResponses(bids))
}

//	@Summary		List my auctions
//	@Description	The caller's latest 50 auctions in any state.
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}	auctionResponse
//	@Security		accessToken
//	@Router			/users/me/auctions [get]
func (server *Server) listMyAuctions(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	auctions, err := server.auctions.ListUserAuctions(c, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuctionResponses(auctions))
}
