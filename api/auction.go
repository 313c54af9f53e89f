package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	"github.com/katatrina/vgvault-BE/internal/auction"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/katatrina/vgvault-BE/internal/validator"
	"github.com/shopspring/decimal"
)

const maxImageSize = 10 << 20

type listAuctionsQuery struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1"`
}

//	@Summary		List active auctions
//	@Description	Active auctions, newest first.
//	@Tags			auctions
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum number of auctions (default 100)"
//	@Success		200		{array}	auctionResponse
//	@Router			/auctions [get]
func (server *Server) listActiveAuctions(c *gin.Context) {
	var query listAuctionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}

	auctions, err := server.auctions.ListActiveAuctions(c, query.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuctionResponses(auctions))
}

//	@Summary		Get auction details
//	@Description	The auction with its seller, highest bidder, bid history and the minimum next bid.
//	@Tags			auctions
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	db.AuctionDetails
//	@Failure		404			{object}	errorBody
//	@Router			/auctions/{auctionID} [get]
func (server *Server) getAuctionDetails(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	details, err := server.auctions.GetAuctionDetails(c, auctionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

type createAuctionForm struct {
	Title         string `form:"title" binding:"required"`
	Description   string `form:"description"`
	StartingPrice string `form:"starting_price" binding:"required"`
	HammerPrice   string `form:"hammer_price"`
	DurationDays  int    `form:"duration_days" binding:"required"`
}

func (form *createAuctionForm) prices() (startingPrice decimal.Decimal, hammerPrice *decimal.Decimal, violations []*FieldViolation) {
	startingPrice, err := decimal.NewFromString(form.StartingPrice)
	if err != nil {
		violations = append(violations, fieldViolation("starting_price", fmt.Errorf("must be a number")))
	}

	if form.HammerPrice != "" {
		h, err := decimal.NewFromString(form.HammerPrice)
		if err != nil {
			violations = append(violations, fieldViolation("hammer_price", fmt.Errorf("must be a number")))
		} else {
			hammerPrice = &h
		}
	}

	return startingPrice, hammerPrice, violations
}

//	@Summary		Create an auction
//	@Description	Lists a new auction. Images that fail to upload are skipped.
//	@Tags			auctions
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title			formData	string	true	"Title (3-100 characters)"
//	@Param			description		formData	string	false	"Description (up to 5000 characters)"
//	@Param			starting_price	formData	number	true	"Starting price"
//	@Param			hammer_price	formData	number	false	"Buy now price, greater than the starting price"
//	@Param			duration_days	formData	int		true	"Duration in days (1-30)"
//	@Param			images			formData	file	false	"Up to 5 images"
//	@Success		201				{object}	auctionResponse
//	@Failure		400				{object}	errorBody
//	@Security		accessToken
//	@Router			/auctions [post]
func (server *Server) createAuction(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	var form createAuctionForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}

	startingPrice, hammerPrice, violations := form.prices()
	if violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	var fileHeaders []*multipart.FileHeader
	if multipartForm, err := c.MultipartForm(); err == nil {
		fileHeaders = multipartForm.File["images"]
	}
	if len(fileHeaders) > validator.MaxAuctionImages {
		abortWithError(c, apperror.InvalidInput("at most %d images are allowed", validator.MaxAuctionImages))
		return
	}

	images, err := readImages(fileHeaders)
	if err != nil {
		abortWithError(c, err)
		return
	}

	created, err := server.auctions.CreateAuction(c, auction.CreateAuctionParams{
		SellerID:      authPayload.UserID,
		Title:         form.Title,
		Description:   form.Description,
		StartingPrice: startingPrice,
		HammerPrice:   hammerPrice,
		DurationDays:  form.DurationDays,
		Images:        images,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAuctionResponse(created))
}

func readImages(fileHeaders []*multipart.FileHeader) ([]auction.Image, error) {
	images := make([]auction.Image, 0, len(fileHeaders))

	for _, fileHeader := range fileHeaders {
		if fileHeader.Size > maxImageSize {
			return nil, apperror.InvalidInput("image %s is larger than %d MB", fileHeader.Filename, maxImageSize>>20)
		}

		data, err := readFile(fileHeader)
		if err != nil {
			return nil, err
		}

		images = append(images, auction.Image{Filename: fileHeader.Filename, Data: data})
	}

	return images, nil
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// parseUUIDParam aborts with 400 when the path parameter is not a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithError(c, apperror.InvalidInput("invalid %s: %s", name, c.Param(name)))
		return uuid.Nil, false
	}
	return id, true
}
