package handler

import (
	"net/http"

	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	profile "craftvale.gg/communityapi/internal/modules/profile/service"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"craftvale.gg/communityapi/pkg/response"
	"craftvale.gg/communityapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service profile.ProfileService
}

func NewProfileHandler(service profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	// p may be nil: the profile has not been provisioned yet.
	c.JSON(http.StatusOK, profileDto.ProfileResponse{Profile: p})
}

// RefreshMyProfile re-reads the profile from the store on demand. The
// profile service is request-scoped, so a refresh is simply a fresh read.
func (h *ProfileHandler) RefreshMyProfile(c *gin.Context) {
	h.GetMyProfile(c)
}

func (h *ProfileHandler) GetProfileByUsername(c *gin.Context) {
	p, err := h.service.GetByMinecraftUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileDto.ProfileResponse{Profile: p})
}

func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input profileDto.UpdateProfileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	var avatar *commonDto.AvatarFile
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read avatar"})
			return
		}
		defer file.Close()

		avatar = &commonDto.AvatarFile{
			Reader:   file,
			FileName: fileHeader.Filename,
		}
	}

	updated, err := h.service.Update(c.Request.Context(), userID, input, avatar)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileDto.ProfileResponse{Profile: updated})
}
